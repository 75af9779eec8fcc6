// Package app implements the application layer for jarpath.
package app

import (
	"context"
	"maps"

	"go.trai.ch/jarpath/internal/adapters/cache" //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpath/internal/adapters/fs"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpath/internal/adapters/maven" //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/jarpath/internal/core/ports"
	"go.trai.ch/jarpath/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       ports.CommandRunner
	descriptors  ports.DescriptorWriter
	verifier     ports.Verifier
	logger       ports.Logger
	tracer       ports.Tracer
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner ports.CommandRunner,
	descriptors ports.DescriptorWriter,
	verifier ports.Verifier,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		descriptors:  descriptors,
		verifier:     verifier,
		logger:       log,
		tracer:       tracer,
		workDir:      ".",
	}
}

// WithWorkDir sets the directory configuration discovery starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Options are the per-invocation overrides of the loaded configuration.
type Options struct {
	// Repositories are added after the configured ones for the duration of one operation.
	Repositories []string

	// LocalRepository replaces the configured local artifact storage root.
	LocalRepository string

	// CachePath replaces the configured cache file.
	CachePath string

	// NoCache keeps the cache in memory for this invocation.
	NoCache bool

	// Properties are merged over the configured ones.
	Properties map[string]string
}

// CacheListing is the content of the persisted classpath cache.
type CacheListing struct {
	Path    string
	Entries []domain.CacheEntry
}

// ConfigureLogging switches log verbosity and format.
func (a *App) ConfigureLogging(verbose, jsonOutput bool) {
	a.logger.SetJSON(jsonOutput)
	a.logger.SetVerbose(verbose)
}

// Resolve returns the union of the classpaths of the given coordinates.
func (a *App) Resolve(ctx context.Context, coordinates []string, opts Options) (domain.Classpath, error) {
	if len(coordinates) == 0 {
		return nil, domain.ErrNoCoordinatesSpecified
	}

	s, err := a.session(opts)
	if err != nil {
		return nil, err
	}

	var cp domain.Classpath
	err = s.resolver.WithRepositories(opts.Repositories, func(r *resolver.Resolver) error {
		cp, err = r.ResolveAll(ctx, coordinates, nil)
		return err
	})
	return cp, err
}

// Fetch downloads one artifact into the local repository.
func (a *App) Fetch(ctx context.Context, coordinate string, opts Options) error {
	s, err := a.session(opts)
	if err != nil {
		return err
	}
	return s.resolver.Fetch(ctx, coordinate, opts.Repositories)
}

// Inspect lists what the local repository holds for one coordinate.
func (a *App) Inspect(_ context.Context, coordinate string, opts Options) (domain.LocalArtifact, error) {
	s, err := a.session(opts)
	if err != nil {
		return domain.LocalArtifact{}, err
	}
	return s.resolver.Inspect(coordinate)
}

// CacheList returns every persisted entry together with its validity.
func (a *App) CacheList(_ context.Context, opts Options) (CacheListing, error) {
	s, err := a.session(opts)
	if err != nil {
		return CacheListing{}, err
	}
	return CacheListing{Path: s.cache.Path(), Entries: s.cache.Entries()}, nil
}

// session holds the engine objects of one invocation.
type session struct {
	settings *domain.Settings
	cache    *cache.FileCache
	resolver *resolver.Resolver
}

func (a *App) session(opts Options) (*session, error) {
	settings, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	applyOverrides(settings, opts)

	cachePath := settings.CachePath
	if settings.CacheDisabled {
		cachePath = ""
	}
	classpathCache := cache.NewFileCache(cachePath, a.verifier, a.logger)

	client := maven.NewClient(a.runner, a.tracer, maven.Config{
		Executable:      settings.Executable,
		LocalRepository: settings.LocalRepository,
		Properties:      settings.Properties,
		Dir:             settings.ProjectRoot,
	})
	local := fs.NewLocalRepository(settings.EffectiveLocalRepository())

	return &session{
		settings: settings,
		cache:    classpathCache,
		resolver: resolver.New(client, classpathCache, a.descriptors, local, a.logger, a.tracer, settings.Repositories...),
	}, nil
}

// applyOverrides merges the flag values into settings. Repositories are not merged here;
// each operation adds them to its resolver session.
func applyOverrides(settings *domain.Settings, opts Options) {
	if opts.LocalRepository != "" {
		settings.LocalRepository = opts.LocalRepository
	}
	if opts.CachePath != "" {
		settings.CachePath = opts.CachePath
	}
	if opts.NoCache {
		settings.CacheDisabled = true
	}
	if len(opts.Properties) > 0 {
		if settings.Properties == nil {
			settings.Properties = make(map[string]string, len(opts.Properties))
		}
		maps.Copy(settings.Properties, opts.Properties)
	}
}
