package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptctl/pgrp"
)

func newTcsetpgrpCmd() *cobra.Command {
	var fd int

	cmd := &cobra.Command{
		Use:   "tcsetpgrp PGRP",
		Short: "Make PGRP the foreground process group of a terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pgid, err := parseID("process group", args[0])
			if err != nil {
				return err
			}
			if err := pgrp.Tcsetpgrp(fd, pgid); err != nil {
				return fmt.Errorf("tcsetpgrp fd %d: %w", fd, err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&fd, "fd", 0, "Terminal file descriptor")
	return cmd
}
