//go:build unix

package pgrp

import "golang.org/x/sys/unix"

// Setpgid moves process pid into process group pgid. A zero pid means the
// caller; a zero pgid means pid itself.
func Setpgid(pid int, pgid int) error {
	return unix.Setpgid(pid, pgid)
}

// Getpgid returns the process group of process pid, or of the caller when pid
// is zero.
func Getpgid(pid int) (int, error) {
	pgid, err := unix.Getpgid(pid)
	if err != nil {
		return -1, err
	}
	return pgid, nil
}
