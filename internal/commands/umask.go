package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hnrobert/privmgr/internal/priv"
)

func newUmaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "umask <octal>",
		Short: "Set the file-creation mask and print the previous one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := strconv.ParseInt(args[0], 8, 32)
			if err != nil || mask < 0 || mask > 0o777 {
				return fmt.Errorf("invalid umask %q (want octal like 022)", args[0])
			}
			old := priv.Umask(int(mask))
			fmt.Fprintf(cmd.OutOrStdout(), "%04o\n", old)
			return nil
		},
	}
}
