//go:build unix

package commands

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/hnrobert/privmgr/internal/config"
	"github.com/hnrobert/privmgr/internal/priv"
)

var profilePath string

func newDropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop --profile <file> -- <command> [args...]",
		Short: "Drop privileges per a profile, then exec a command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if profilePath == "" {
				return errors.New("--profile is required")
			}
			p, err := config.LoadProfile(profilePath)
			if err != nil {
				return err
			}
			spec, err := p.Resolve()
			if err != nil {
				return err
			}
			if err := priv.Drop(spec); err != nil {
				return err
			}

			path, err := exec.LookPath(args[0])
			if err != nil {
				return err
			}
			// Exec replaces this process; the dropped identity is all
			// the command ever sees.
			return unix.Exec(path, args, os.Environ())
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "YAML drop profile")

	return cmd
}
