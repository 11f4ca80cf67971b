package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"ptctl/log"
	"ptctl/pgrp"
)

// Status is what the status command reports.
type Status struct {
	Pid      int            `yaml:"pid"`
	Pgid     int            `yaml:"pgid"`
	Terminal TerminalStatus `yaml:"terminal"`
}

// TerminalStatus describes the terminal open on Fd. Error holds the
// tcgetpgrp failure, if any, in which case ForegroundGroup is -1.
type TerminalStatus struct {
	Fd              int    `yaml:"fd"`
	IsTerminal      bool   `yaml:"isTerminal"`
	ForegroundGroup int    `yaml:"foregroundGroup"`
	Foreground      bool   `yaml:"foreground"`
	Error           string `yaml:"error,omitempty"`
}

// CollectStatus reports the job-control state of the current process with
// respect to the terminal open on fd. A failed foreground lookup is recorded
// in the result.
func CollectStatus(fd int) Status {
	st := Status{
		Pid:  os.Getpid(),
		Pgid: pgrp.Getpgrp(),
		Terminal: TerminalStatus{
			Fd:              fd,
			IsTerminal:      term.IsTerminal(fd),
			ForegroundGroup: -1,
		},
	}

	fg, err := pgrp.Tcgetpgrp(fd)
	if err != nil {
		log.Logger.Printf("tcgetpgrp fd=%d: %v", fd, err)
		st.Terminal.Error = err.Error()
		return st
	}
	st.Terminal.ForegroundGroup = fg
	st.Terminal.Foreground = fg == st.Pgid
	return st
}

func newStatusCmd() *cobra.Command {
	var fd int
	var output string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the process group and the terminal's foreground group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := CollectStatus(fd)
			switch output {
			case "text":
				return writeStatusText(cmd.OutOrStdout(), st)
			case "yaml":
				b, err := yaml.Marshal(st)
				if err != nil {
					return fmt.Errorf("encode status: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}

	cmd.Flags().IntVar(&fd, "fd", 0, "Terminal file descriptor")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|yaml)")
	return cmd
}

func writeStatusText(out io.Writer, st Status) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PID\tPGID\tFD\tTTY\tFOREGROUND")

	fg := "-"
	if st.Terminal.Error == "" {
		fg = fmt.Sprintf("%d", st.Terminal.ForegroundGroup)
		if st.Terminal.Foreground {
			fg += " (self)"
		}
	}
	tty := "No"
	if st.Terminal.IsTerminal {
		tty = "Yes"
	}
	fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n", st.Pid, st.Pgid, st.Terminal.Fd, tty, fg)
	if err := w.Flush(); err != nil {
		return err
	}
	if st.Terminal.Error != "" {
		fmt.Fprintf(out, "tcgetpgrp: %s\n", st.Terminal.Error)
	}
	return nil
}
