// Package pgrp exposes terminal and process-group control primitives.
//
// Every function is a direct call to the matching POSIX primitive
// (tcsetpgrp, tcgetpgrp, setpgid, getpgrp, getpgid). Failures come back as
// the raw syscall.Errno, so callers can match them with errors.Is. Nothing is
// retried, cached or validated beyond what the kernel enforces.
//
// On platforms without job control the fallible functions return
// errors.ErrUnsupported and Getpgrp returns -1.
package pgrp
