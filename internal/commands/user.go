package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hnrobert/privmgr/internal/identity"
)

var userAll bool

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user <name|uid>",
		Short: "Look up a user in the identity database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if userAll {
				users, err := identity.Users()
				if err != nil {
					return err
				}
				for _, u := range users {
					fmt.Fprintf(out, "%s:%d:%d:%s:%s\n", u.Name, u.UID, u.GID, u.Home, u.Shell)
				}
				return nil
			}
			if len(args) != 1 {
				return errors.New("one user name or uid required (or --all)")
			}
			u, err := lookupUserArg(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "name:  %s\n", u.Name)
			fmt.Fprintf(out, "uid:   %d\n", u.UID)
			fmt.Fprintf(out, "gid:   %d\n", u.GID)
			fmt.Fprintf(out, "gecos: %s\n", u.Gecos)
			fmt.Fprintf(out, "home:  %s\n", u.Home)
			fmt.Fprintf(out, "shell: %s\n", u.Shell)
			return nil
		},
	}

	cmd.Flags().BoolVar(&userAll, "all", false, "list every user")

	return cmd
}

// lookupUserArg treats an all-digits argument as a uid, anything else
// as a login name. The same convention id(1) uses.
func lookupUserArg(arg string) (*identity.User, error) {
	if uid, err := strconv.Atoi(arg); err == nil {
		return identity.LookupUserID(uid)
	}
	return identity.LookupUser(arg)
}
