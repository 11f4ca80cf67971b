package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptctl/pgrp"
)

func newGetpgidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "getpgid [PID]",
		Short: "Print the process group of PID, or of ptctl itself",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), pgrp.Getpgrp())
				return nil
			}
			pid, err := parseID("pid", args[0])
			if err != nil {
				return err
			}
			pgid, err := pgrp.Getpgid(pid)
			if err != nil {
				return fmt.Errorf("getpgid %d: %w", pid, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), pgid)
			return nil
		},
	}
}

func newSetpgidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setpgid PID PGID",
		Short: "Move PID into process group PGID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID("pid", args[0])
			if err != nil {
				return err
			}
			pgid, err := parseID("pgid", args[1])
			if err != nil {
				return err
			}
			if err := pgrp.Setpgid(pid, pgid); err != nil {
				return fmt.Errorf("setpgid %d %d: %w", pid, pgid, err)
			}
			return nil
		},
	}
}
