//go:build unix

package ffi

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"ptctl/internal/proctest"
	"ptctl/log"
)

// slot stands in for one thread's storage.
type slot struct {
	code int32
}

func (me *slot) Set(code int32) { me.code = code }

func (me *slot) Get() int32 { return me.code }

func TestMain(m *testing.M) {
	switch proctest.Helper() {
	case "":
	case "setpgid":
		os.Exit(helperSetpgid())
	case "pty":
		os.Exit(helperPty())
	default:
		fmt.Fprintf(os.Stderr, "unknown helper %q\n", proctest.Helper())
		os.Exit(2)
	}
	os.Exit(m.Run())
}

func helperSetpgid() int {
	var s slot
	pid := int32(os.Getpid())
	before := GetProcessGroupOf(&s, pid)
	if before == pid {
		fmt.Fprintln(os.Stderr, "already a group leader")
		return proctest.Unavailable
	}
	fmt.Println(pid, SetProcessGroup(&s, pid, pid), GetProcessGroupOf(&s, pid), GetLastError(&s))
	return 0
}

func helperPty() int {
	master, tty, err := proctest.Controlling()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return proctest.Unavailable
	}
	defer master.Close()
	defer tty.Close()
	fd := int32(tty.Fd())

	member, err := proctest.StartMember()
	if err != nil {
		fmt.Fprintln(os.Stderr, "start member:", err)
		return proctest.Unavailable
	}
	defer member.Stop()

	var s slot
	own := GetOwnProcessGroup()
	other := int32(member.Pgid())

	setOther := SetTerminalForegroundGroup(&s, fd, other)
	moved := GetTerminalForegroundGroup(&s, fd)
	setOwn := SetTerminalForegroundGroup(&s, fd, own)
	restored := GetTerminalForegroundGroup(&s, fd)

	fmt.Println(own, other, setOther, moved, setOwn, restored, GetLastError(&s))
	return 0
}

func TestGetOwnProcessGroup(t *testing.T) {
	got := GetOwnProcessGroup()
	assert.GreaterOrEqual(t, got, int32(0))
	assert.Equal(t, int32(unix.Getpgrp()), got)
}

func TestGetProcessGroupOf(t *testing.T) {
	var s slot
	assert.Equal(t, GetOwnProcessGroup(), GetProcessGroupOf(&s, int32(os.Getpid())))
	assert.Equal(t, GetOwnProcessGroup(), GetProcessGroupOf(&s, 0))
	assert.Equal(t, int32(0), GetLastError(&s))

	assert.Equal(t, Failure, GetProcessGroupOf(&s, math.MaxInt32))
	assert.Equal(t, int32(unix.ESRCH), GetLastError(&s))
}

func TestSetProcessGroupOwnGroup(t *testing.T) {
	got := proctest.Run(t, "setpgid")
	require.Len(t, got, 4)

	pid, set, pgid, errno := got[0], got[1], got[2], got[3]
	assert.Equal(t, 0, set)
	assert.Equal(t, pid, pgid)
	assert.Equal(t, 0, errno)
}

func TestSetProcessGroupFailure(t *testing.T) {
	var s slot
	assert.Equal(t, Failure, SetProcessGroup(&s, math.MaxInt32, 0))
	assert.Equal(t, int32(unix.ESRCH), GetLastError(&s))

	assert.Equal(t, Failure, SetProcessGroup(&s, 0, -1))
	assert.Equal(t, int32(unix.EINVAL), GetLastError(&s))
}

func TestSetTerminalForegroundGroup(t *testing.T) {
	got := proctest.Run(t, "pty")
	require.Len(t, got, 7)

	own, other, setOther, moved, setOwn, restored, errno := got[0], got[1], got[2], got[3], got[4], got[5], got[6]
	assert.NotEqual(t, own, other)
	assert.Equal(t, 0, setOther)
	assert.Equal(t, other, moved)
	assert.Equal(t, 0, setOwn)
	assert.Equal(t, own, restored)
	assert.Equal(t, 0, errno)
}

func TestGetTerminalForegroundGroupFailure(t *testing.T) {
	var s slot
	assert.Equal(t, Failure, GetTerminalForegroundGroup(&s, -1))
	assert.Equal(t, int32(unix.EBADF), GetLastError(&s))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.Equal(t, Failure, GetTerminalForegroundGroup(&s, int32(r.Fd())))
	assert.Equal(t, int32(unix.ENOTTY), GetLastError(&s))
}

func TestSetTerminalForegroundGroupFailure(t *testing.T) {
	var s slot
	assert.Equal(t, Failure, SetTerminalForegroundGroup(&s, -1, GetOwnProcessGroup()))
	assert.Equal(t, int32(unix.EBADF), GetLastError(&s))
}

func TestSuccessKeepsLastError(t *testing.T) {
	var s slot
	require.Equal(t, Failure, GetProcessGroupOf(&s, math.MaxInt32))
	require.NotEqual(t, Failure, GetProcessGroupOf(&s, 0))
	assert.Equal(t, int32(unix.ESRCH), GetLastError(&s))
}

func TestFailureIsTraced(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(io.Discard)

	var s slot
	GetTerminalForegroundGroup(&s, -1)
	assert.Contains(t, buf.String(), "tcgetpgrp")
	assert.Contains(t, buf.String(), fmt.Sprintf("errno %d", unix.EBADF))
}
