package pgrp

import "golang.org/x/sys/unix"

// Tcgetpgrp returns the foreground process group of the terminal open on fd.
func Tcgetpgrp(fd int) (int, error) {
	// pid_t is 32-bit on every Linux architecture; IoctlGetInt would read
	// the wrong half of the word on big-endian 64-bit machines.
	pgrp, err := unix.IoctlGetUint32(fd, unix.TIOCGPGRP)
	if err != nil {
		return -1, err
	}
	return int(pgrp), nil
}
