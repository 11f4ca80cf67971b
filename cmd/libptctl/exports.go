//go:build unix

package main

/*
void ptctl_store_errno(int code);
int ptctl_load_errno(void);
*/
import "C"

import "ptctl/ffi"

// threadSlot keeps the error code in C thread-local storage of the caller.
type threadSlot struct{}

func (threadSlot) Set(code int32) { C.ptctl_store_errno(C.int(code)) }

func (threadSlot) Get() int32 { return int32(C.ptctl_load_errno()) }

// Returns 0 on success, -1 on error.
//
//export ptctl_tcsetpgrp
func ptctl_tcsetpgrp(fd C.int, pgrp C.int) C.int {
	return C.int(ffi.SetTerminalForegroundGroup(threadSlot{}, int32(fd), int32(pgrp)))
}

// Returns the foreground process group ID, or -1 on error.
//
//export ptctl_tcgetpgrp
func ptctl_tcgetpgrp(fd C.int) C.int {
	return C.int(ffi.GetTerminalForegroundGroup(threadSlot{}, int32(fd)))
}

// Returns 0 on success, -1 on error.
//
//export ptctl_setpgid
func ptctl_setpgid(pid C.int, pgid C.int) C.int {
	return C.int(ffi.SetProcessGroup(threadSlot{}, int32(pid), int32(pgid)))
}

//export ptctl_getpgrp
func ptctl_getpgrp() C.int {
	return C.int(ffi.GetOwnProcessGroup())
}

// Returns the process group ID of pid, or -1 on error.
//
//export ptctl_getpgid
func ptctl_getpgid(pid C.int) C.int {
	return C.int(ffi.GetProcessGroupOf(threadSlot{}, int32(pid)))
}

// Returns the error code of the last failed ptctl_* call on this thread, or 0
// if this thread never failed.
//
//export ptctl_get_errno
func ptctl_get_errno() C.int {
	return C.int(ffi.GetLastError(threadSlot{}))
}
