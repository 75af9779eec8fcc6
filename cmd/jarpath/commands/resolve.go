package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	var (
		repositories []string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "resolve [coordinates...]",
		Short: "Print the classpath of one or more coordinates",
		Long: "Print the compile classpath of each coordinate (group:artifact[:packaging[:classifier]]:version).\n" +
			"Several coordinates yield the order-preserving union of their classpaths.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			outputFormat, err := ParseFormat(format)
			if err != nil {
				return err
			}

			opts, err := c.options(repositories)
			if err != nil {
				return err
			}

			cp, err := c.app.Resolve(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			return writeClasspath(cmd.OutOrStdout(), cp, outputFormat)
		},
	}
	cmd.Flags().StringArrayVarP(&repositories, "repository", "r", nil, "Add a remote repository URL (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", string(FormatClasspath), "Output format: classpath, lines, or json")
	return cmd
}
