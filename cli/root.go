package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"ptctl/log"
)

func NewRootCmd() *cobra.Command {
	logPath := os.Getenv(log.EnvLogPath)

	root := &cobra.Command{
		Use:   "ptctl",
		Short: "Inspect and change terminal process groups",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logPath == os.Getenv(log.EnvLogPath) {
				return nil
			}
			return log.Open(logPath)
		},
	}

	root.PersistentFlags().StringVar(&logPath, "log", logPath, "Append a debug trace to this file")

	root.AddCommand(newStatusCmd())
	root.AddCommand(newGetpgidCmd())
	root.AddCommand(newSetpgidCmd())
	root.AddCommand(newTcsetpgrpCmd())

	root.SilenceUsage = true
	root.SilenceErrors = true

	return root
}

// Execute runs the CLI entrypoint.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseID(kind string, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", kind, s)
	}
	return n, nil
}
