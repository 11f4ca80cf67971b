//go:build unix && !aix

package pgrp

import "golang.org/x/sys/unix"

// Tcsetpgrp makes pgrp the foreground process group of the terminal open on fd.
func Tcsetpgrp(fd int, pgrp int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCSPGRP, pgrp)
}
