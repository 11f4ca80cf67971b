// Package ffi adapts pgrp to the integer calling convention of the C shim.
//
// Every fallible function returns -1 on failure and stores the platform error
// code in the caller's errno.Slot, where GetLastError reads it. Nothing
// panics, retries or validates arguments.
package ffi

import (
	"ptctl/errno"
	"ptctl/log"
	"ptctl/pgrp"
)

// Failure is the sentinel every fallible function returns on error.
const Failure int32 = -1

func fail(slot errno.Slot, op string, err error) int32 {
	code := errno.Code(err)
	slot.Set(code)
	log.Logger.Printf("%s: %v (errno %d)", op, err, code)
	return Failure
}

// SetTerminalForegroundGroup wraps tcsetpgrp. It returns 0 on success.
func SetTerminalForegroundGroup(slot errno.Slot, fd int32, pgid int32) int32 {
	if err := pgrp.Tcsetpgrp(int(fd), int(pgid)); err != nil {
		return fail(slot, "tcsetpgrp", err)
	}
	return 0
}

// GetTerminalForegroundGroup wraps tcgetpgrp.
func GetTerminalForegroundGroup(slot errno.Slot, fd int32) int32 {
	pgid, err := pgrp.Tcgetpgrp(int(fd))
	if err != nil {
		return fail(slot, "tcgetpgrp", err)
	}
	return int32(pgid)
}

// SetProcessGroup wraps setpgid. It returns 0 on success.
func SetProcessGroup(slot errno.Slot, pid int32, pgid int32) int32 {
	if err := pgrp.Setpgid(int(pid), int(pgid)); err != nil {
		return fail(slot, "setpgid", err)
	}
	return 0
}

// GetOwnProcessGroup wraps getpgrp, which cannot fail.
func GetOwnProcessGroup() int32 {
	return int32(pgrp.Getpgrp())
}

// GetProcessGroupOf wraps getpgid.
func GetProcessGroupOf(slot errno.Slot, pid int32) int32 {
	pgid, err := pgrp.Getpgid(int(pid))
	if err != nil {
		return fail(slot, "getpgid", err)
	}
	return int32(pgid)
}

// GetLastError returns the code of the last failure stored in slot, or 0 if
// its thread never failed.
func GetLastError(slot errno.Slot) int32 {
	return slot.Get()
}
