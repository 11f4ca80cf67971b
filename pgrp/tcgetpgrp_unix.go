//go:build unix && !linux

package pgrp

import "golang.org/x/sys/unix"

// Tcgetpgrp returns the foreground process group of the terminal open on fd.
func Tcgetpgrp(fd int) (int, error) {
	pgrp, err := unix.IoctlGetInt(fd, unix.TIOCGPGRP)
	if err != nil {
		return -1, err
	}
	return pgrp, nil
}
