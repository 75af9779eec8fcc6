package commands

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/jarpath/internal/ui/output"
	"go.trai.ch/jarpath/internal/ui/style"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the classpath cache",
	}
	cmd.AddCommand(c.newCacheListCmd())
	return cmd
}

func (c *CLI) newCacheListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached classpaths and whether they are still valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.options(nil)
			if err != nil {
				return err
			}

			listing, err := c.app.CacheList(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			if listing.Path == "" {
				_, _ = fmt.Fprintln(out, "cache is disabled")
				return nil
			}
			if len(listing.Entries) == 0 {
				_, _ = fmt.Fprintf(out, "no entries in %s\n", listing.Path)
				return nil
			}

			for _, entry := range listing.Entries {
				state := out.String("valid").Foreground(termenv.RGBColor(string(style.Green)))
				if !entry.Valid {
					state = out.String("stale").Foreground(termenv.RGBColor(string(style.Yellow)))
				}
				_, _ = fmt.Fprintf(out, "%s  %s  (%d entries)\n", state, entry.Key, len(entry.Classpath))
			}
			return nil
		},
	}
}
