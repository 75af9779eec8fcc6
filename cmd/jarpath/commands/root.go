// Package commands implements the CLI commands for jarpath.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/jarpath/internal/app"
	"go.trai.ch/jarpath/internal/build"
	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for jarpath.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	global  globalFlags
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(verbose, jsonOutput bool)
	Resolve(ctx context.Context, coordinates []string, opts app.Options) (domain.Classpath, error)
	Fetch(ctx context.Context, coordinate string, opts app.Options) error
	Inspect(ctx context.Context, coordinate string, opts app.Options) (domain.LocalArtifact, error)
	CacheList(ctx context.Context, opts app.Options) (app.CacheListing, error)
}

type globalFlags struct {
	verbose         bool
	logJSON         bool
	localRepository string
	cacheFile       string
	noCache         bool
	properties      []string
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "jarpath",
		Short:         "Resolve Maven coordinates into JVM classpaths",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// Registered before the default version flag so that -v stays --verbose.
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&c.global.verbose, "verbose", "v", false, "Log build tool output and timings")
	flags.BoolVar(&c.global.logJSON, "log-json", false, "Write logs as JSON")
	flags.StringVar(&c.global.localRepository, "local-repository", "", "Local artifact repository directory")
	flags.StringVar(&c.global.cacheFile, "cache-file", "", "Classpath cache file")
	flags.BoolVar(&c.global.noCache, "no-cache", false, "Keep the classpath cache in memory only")
	flags.StringArrayVarP(&c.global.properties, "define", "D", nil, "Pass a key=value property to the build tool")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.ConfigureLogging(c.global.verbose, c.global.logJSON)
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options builds the app options from the global flags plus per-command repositories.
func (c *CLI) options(repositories []string) (app.Options, error) {
	properties, err := parseProperties(c.global.properties)
	if err != nil {
		return app.Options{}, err
	}
	return app.Options{
		Repositories:    repositories,
		LocalRepository: c.global.localRepository,
		CachePath:       c.global.cacheFile,
		NoCache:         c.global.noCache,
		Properties:      properties,
	}, nil
}

func parseProperties(values []string) (map[string]string, error) {
	properties := make(map[string]string, len(values))
	for _, value := range values {
		key, val, ok := strings.Cut(value, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, errors.Join(domain.ErrInvalidProperty, zerr.With(zerr.New("malformed -D value"), "value", value))
		}
		properties[strings.TrimSpace(key)] = val
	}
	return properties, nil
}
