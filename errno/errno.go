// Package errno converts Go errors to the integer codes foreign callers read.
//
// Foreign callers cannot see Go errors, only integers. Each failure is stored
// in a Slot scoped to the calling OS thread, so a following GetLastError on
// that thread reads it back the way C code reads errno. Successful calls leave
// the slot untouched, and a thread that never failed reads 0.
package errno

import (
	"errors"
	"syscall"
)

// Code converts err to a platform error code: 0 for nil, the Errno value
// when one is wrapped in err, EINVAL otherwise.
func Code(err error) int32 {
	if err == nil {
		return 0
	}
	var e syscall.Errno
	if errors.As(err, &e) {
		return int32(e)
	}
	return int32(syscall.EINVAL)
}

// Slot holds the last error code of one OS thread. Implementations must give
// every thread its own value, starting at 0, that goes away with the thread.
type Slot interface {
	Set(code int32)
	Get() int32
}
