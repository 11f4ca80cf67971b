//go:build !unix

package pgrp

import "errors"

func Tcsetpgrp(fd int, pgrp int) error {
	return errors.ErrUnsupported
}

func Tcgetpgrp(fd int) (int, error) {
	return -1, errors.ErrUnsupported
}

func Setpgid(pid int, pgid int) error {
	return errors.ErrUnsupported
}

func Getpgrp() int { return -1 }

func Getpgid(pid int) (int, error) {
	return -1, errors.ErrUnsupported
}
