// Package log holds the debug logger shared by ptctl packages.
//
// Output is discarded unless PTCTL_LOG names a file. The shim is loaded into
// foreign processes, so it never writes to their stdout or stderr.
package log

import (
	"io"
	golog "log"
	"os"
)

// EnvLogPath names the environment variable holding the trace file path.
const EnvLogPath = "PTCTL_LOG"

// Logger is the debug trace. Open decides where it writes.
var Logger = golog.New(io.Discard, "ptctl ", golog.LstdFlags)

var file *os.File

func init() {
	Open(os.Getenv(EnvLogPath))
}

// Open redirects Logger to the file at path, appending. An empty path, or a
// file that cannot be opened, leaves Logger silent.
func Open(path string) (err error) {
	if file != nil {
		file.Close()
		file = nil
	}
	Logger.SetOutput(io.Discard)

	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	file = f
	Logger.SetOutput(f)
	Logger.SetFlags(golog.LstdFlags | golog.Lmicroseconds | golog.Lshortfile)
	return nil
}

// SetOutput is for tests.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}
