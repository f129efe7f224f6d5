package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hnrobert/privmgr/internal/rlimit"
)

var nofileFlag string

func newLimitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Read or write the open-file resource limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nofileFlag != "" {
				l, err := parseLimitPair(nofileFlag)
				if err != nil {
					return err
				}
				if err := rlimit.Set(rlimit.Nofile, l); err != nil {
					return fmt.Errorf("setrlimit nofile %s: %w", nofileFlag, err)
				}
			}
			l, err := rlimit.Get(rlimit.Nofile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "nofile: soft=%d hard=%d\n", l.Cur, l.Max)
			return nil
		},
	}

	cmd.Flags().StringVar(&nofileFlag, "nofile", "", "apply an open-file limit pair as soft:hard before reading")

	return cmd
}

func parseLimitPair(s string) (rlimit.Limit, error) {
	softStr, hardStr, ok := strings.Cut(s, ":")
	if !ok {
		return rlimit.Limit{}, fmt.Errorf("invalid limit pair %q (want soft:hard)", s)
	}
	soft, err := strconv.ParseUint(softStr, 10, 64)
	if err != nil {
		return rlimit.Limit{}, fmt.Errorf("invalid soft limit %q", softStr)
	}
	hard, err := strconv.ParseUint(hardStr, 10, 64)
	if err != nil {
		return rlimit.Limit{}, fmt.Errorf("invalid hard limit %q", hardStr)
	}
	return rlimit.Limit{Cur: soft, Max: hard}, nil
}
