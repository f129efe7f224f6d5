package commands

import (
	"github.com/spf13/cobra"

	"github.com/hnrobert/privmgr/internal/logger"
)

var (
	logDir string
	quiet  bool
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "privctl",
		Short:         "Inspect and change process privileges, identities and resource limits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetQuiet(quiet)
			return logger.Init(logDir)
		},
	}

	cmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "directory for daily log files (default: stderr only)")
	cmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress log output on stderr")

	cmd.AddCommand(
		newUserCmd(),
		newGroupCmd(),
		newLimitsCmd(),
		newUmaskCmd(),
		newDropCmd(),
		newExecCmd(),
		newVerifyCmd(),
		newStatusCmd(),
	)

	return cmd
}
