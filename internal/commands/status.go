package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hnrobert/privmgr/internal/procfs"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report this process's identity, umask and open-file limit from /proc",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := procfs.New("")
			st, err := r.SelfStatus()
			if err != nil {
				return err
			}
			soft, hard, err := r.MaxOpenFiles()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "uid:    real=%d effective=%d saved=%d fs=%d\n",
				st.Uid[0], st.Uid[1], st.Uid[2], st.Uid[3])
			fmt.Fprintf(out, "gid:    real=%d effective=%d saved=%d fs=%d\n",
				st.Gid[0], st.Gid[1], st.Gid[2], st.Gid[3])
			fmt.Fprintf(out, "groups: %v\n", st.Groups)
			fmt.Fprintf(out, "umask:  %04o\n", st.Umask)
			fmt.Fprintf(out, "nofile: soft=%d hard=%d\n", soft, hard)
			return nil
		},
	}
}
