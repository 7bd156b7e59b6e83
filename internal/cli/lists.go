package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Print the task lists of the account",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := o.bootstrap(cmd)
			if err != nil {
				return err
			}
			lists, err := a.uc.Lists(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TITLE\tID")
			for _, l := range lists {
				fmt.Fprintf(w, "%s\t%s\n", l.Title, l.ID)
			}
			return w.Flush()
		},
	}
}
