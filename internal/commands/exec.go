//go:build unix

package commands

import (
	"github.com/spf13/cobra"

	"github.com/hnrobert/privmgr/internal/runas"
)

var (
	execUser        string
	execInteractive bool
)

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec --user <name> -- <command> [args...]",
		Short: "Run one command under another account's credentials",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := runas.New()
			r.Timeout = 0 // foreground command, caller interrupts
			r.Interactive = execInteractive
			return r.Run(cmd.Context(), execUser, args[0], args[1:]...)
		},
	}

	cmd.Flags().StringVar(&execUser, "user", "", "account to run the command as")
	cmd.Flags().BoolVar(&execInteractive, "interactive", false, "attach the command to a PTY")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
