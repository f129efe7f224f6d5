package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hnrobert/privmgr/internal/identity"
)

var groupAll bool

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group <name|gid>",
		Short: "Look up a group in the identity database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if groupAll {
				groups, err := identity.Groups()
				if err != nil {
					return err
				}
				for _, g := range groups {
					fmt.Fprintf(out, "%s:%d:%s\n", g.Name, g.GID, strings.Join(g.Members, ","))
				}
				return nil
			}
			if len(args) != 1 {
				return errors.New("one group name or gid required (or --all)")
			}
			g, err := lookupGroupArg(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "name:    %s\n", g.Name)
			fmt.Fprintf(out, "gid:     %d\n", g.GID)
			fmt.Fprintf(out, "members: %s\n", strings.Join(g.Members, ","))
			return nil
		},
	}

	cmd.Flags().BoolVar(&groupAll, "all", false, "list every group")

	return cmd
}

func lookupGroupArg(arg string) (*identity.Group, error) {
	if gid, err := strconv.Atoi(arg); err == nil {
		return identity.LookupGroupID(gid)
	}
	return identity.LookupGroup(arg)
}
