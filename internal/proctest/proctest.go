//go:build unix

// Package proctest runs parts of a test in a re-executed copy of the test
// binary, for checks that change process-wide state: process groups,
// sessions and controlling terminals.
package proctest

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// Unavailable is the exit status of a helper whose host lacks what it needs.
// Run skips the test when it sees it.
const Unavailable = 3

const envHelper = "PTCTL_TEST_HELPER"

// Helper returns the helper name this process was re-executed as, or "".
func Helper() string {
	return os.Getenv(envHelper)
}

// Run re-executes the test binary as helper name and returns its stdout
// parsed as whitespace-separated integers.
func Run(t *testing.T, name string) []int {
	t.Helper()
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), envHelper+"="+name)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == Unavailable {
		t.Skipf("helper %s unavailable: %s", name, stderr.String())
	}
	require.NoError(t, err, "helper %s: %s", name, stderr.String())

	var ns []int
	for _, f := range strings.Fields(string(out)) {
		n, err := strconv.Atoi(f)
		require.NoError(t, err, "helper %s output %q", name, out)
		ns = append(ns, n)
	}
	return ns
}

// Controlling puts the calling process in a new session and adopts a fresh
// pty as its controlling terminal. Only helpers call it.
//
// SIGHUP is ignored because closing the master hangs up the session, and
// SIGTTOU because the caller may hand the terminal back from the background.
func Controlling() (master *os.File, tty *os.File, err error) {
	signal.Ignore(unix.SIGHUP, unix.SIGTTOU)

	if _, err := unix.Setsid(); err != nil {
		return nil, nil, fmt.Errorf("setsid: %w", err)
	}
	master, tty, err = pty.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open pty: %w", err)
	}
	if err := unix.IoctlSetInt(int(tty.Fd()), unix.TIOCSCTTY, 0); err != nil {
		tty.Close()
		master.Close()
		return nil, nil, fmt.Errorf("TIOCSCTTY: %w", err)
	}
	return master, tty, nil
}

// Member is a process in its own process group inside the caller's session.
type Member struct {
	cmd *exec.Cmd
}

// StartMember starts an idle process that leads a new process group.
func StartMember() (*Member, error) {
	cmd := exec.Command("sleep", "60")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Member{cmd: cmd}, nil
}

// Pgid is the member's process group, equal to its pid.
func (me *Member) Pgid() int {
	return me.cmd.Process.Pid
}

// Stop kills the member and reaps it.
func (me *Member) Stop() {
	me.cmd.Process.Kill()
	me.cmd.Wait()
}
