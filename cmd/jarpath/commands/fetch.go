package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	var repositories []string

	cmd := &cobra.Command{
		Use:   "fetch <coordinate>",
		Short: "Download an artifact into the local repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(repositories)
			if err != nil {
				return err
			}
			if err := c.app.Fetch(cmd.Context(), args[0], opts); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fetched %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&repositories, "repository", "r", nil, "Add a remote repository URL (repeatable)")
	return cmd
}
