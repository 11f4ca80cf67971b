package pgrp

import "golang.org/x/sys/unix"

// Getpgrp returns the process group of the calling process. It cannot fail.
func Getpgrp() int {
	pgid, _ := unix.Getpgrp()
	return pgid
}
