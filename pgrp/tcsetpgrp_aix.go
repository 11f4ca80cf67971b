package pgrp

import "golang.org/x/sys/unix"

// Tcsetpgrp makes pgrp the foreground process group of the terminal open on fd.
func Tcsetpgrp(fd int, pgrp int) error {
	// TIOCSPGRP overflows int on AIX, so convert through uint.
	req := uint(unix.TIOCSPGRP)
	return unix.IoctlSetPointerInt(fd, int(req), pgrp)
}
