package commands

import (
	"fmt"
	"slices"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/jarpath/internal/ui/output"
	"go.trai.ch/jarpath/internal/ui/style"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <coordinate>",
		Short: "List the local repository files of an artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(nil)
			if err != nil {
				return err
			}

			artifact, err := c.app.Inspect(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			if !artifact.Present() {
				mark := out.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red)))
				_, _ = fmt.Fprintf(out, "%s %s is not in %s\n", mark, artifact.Coordinate, artifact.Dir)
				return nil
			}

			mark := out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green)))
			_, _ = fmt.Fprintf(out, "%s %s\n  %s\n", mark, artifact.Coordinate, artifact.Dir)

			extensions := make([]string, 0, len(artifact.Files))
			for ext := range artifact.Files {
				extensions = append(extensions, ext)
			}
			slices.Sort(extensions)
			for _, ext := range extensions {
				_, _ = fmt.Fprintf(out, "  %-12s %s\n", ext, artifact.Files[ext])
			}
			return nil
		},
	}
}
