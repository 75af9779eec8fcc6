// Package resolver implements the cached coordinate to classpath resolution protocol.
package resolver

import (
	"context"
	"errors"

	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/jarpath/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver turns coordinates into classpaths. It owns the session's repository set and
// consults the cache before delegating to the build tool.
// It is not safe for concurrent use; callers resolve sequentially.
type Resolver struct {
	buildTool    ports.BuildTool
	cache        ports.ClasspathCache
	descriptors  ports.DescriptorWriter
	local        ports.LocalRepository
	logger       ports.Logger
	tracer       ports.Tracer
	repositories *domain.RepositorySet
}

// New creates a Resolver whose session starts with the given repositories.
func New(
	buildTool ports.BuildTool,
	cache ports.ClasspathCache,
	descriptors ports.DescriptorWriter,
	local ports.LocalRepository,
	logger ports.Logger,
	tracer ports.Tracer,
	repositories ...string,
) *Resolver {
	return &Resolver{
		buildTool:    buildTool,
		cache:        cache,
		descriptors:  descriptors,
		local:        local,
		logger:       logger,
		tracer:       tracer,
		repositories: domain.NewRepositorySet(repositories...),
	}
}

// Repositories returns the session's repositories in order.
func (r *Resolver) Repositories() []string {
	return r.repositories.URLs()
}

// WithRepositories runs fn with urls temporarily added to the session.
// Only the URLs the scope added are removed afterwards.
func (r *Resolver) WithRepositories(urls []string, fn func(*Resolver) error) error {
	release := r.repositories.Scope(urls...)
	defer release()
	return fn(r)
}

// Resolve returns the classpath of one coordinate.
// extraRepositories are merged into the session permanently.
func (r *Resolver) Resolve(ctx context.Context, coordinateText string, extraRepositories []string) (cp domain.Classpath, err error) {
	ctx, span := r.tracer.Start(ctx, "resolve")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	coordinate, err := domain.ParseCoordinate(coordinateText)
	if err != nil {
		return nil, err
	}
	span.SetAttribute("coordinate", coordinate.String())

	r.repositories.Add(extraRepositories...)

	cp, hit := r.fetchCached(ctx, coordinate)
	span.SetAttribute("cache.hit", hit)

	if !hit {
		cp, err = r.compute(ctx, coordinate)
		if err != nil {
			detail := zerr.With(zerr.Wrap(err, "classpath unavailable"), "coordinate", coordinate.String())
			return nil, errors.Join(domain.ErrResolutionFailed, detail)
		}
	}

	if storeErr := r.cache.Store(coordinate, cp); storeErr != nil {
		r.logger.Warn("classpath cache not persisted: " + storeErr.Error())
	}

	return cp, nil
}

// ResolveAll resolves each coordinate in order and returns the order-preserving union.
func (r *Resolver) ResolveAll(ctx context.Context, coordinates, extraRepositories []string) (domain.Classpath, error) {
	if len(coordinates) == 0 {
		return nil, domain.ErrNoCoordinatesSpecified
	}

	union := domain.Classpath{}
	for _, text := range coordinates {
		cp, err := r.Resolve(ctx, text, extraRepositories)
		if err != nil {
			return nil, err
		}
		union = union.Merge(cp)
	}
	return union, nil
}

// Fetch downloads the artifact into the local repository using the session's repositories.
func (r *Resolver) Fetch(ctx context.Context, coordinateText string, extraRepositories []string) error {
	coordinate, err := domain.ParseCoordinate(coordinateText)
	if err != nil {
		return err
	}
	r.repositories.Add(extraRepositories...)

	r.logger.Info("fetching " + coordinate.String())
	return r.buildTool.Fetch(ctx, coordinate, r.repositories.URLs())
}

// Inspect lists the files the local repository holds for the coordinate.
func (r *Resolver) Inspect(coordinateText string) (domain.LocalArtifact, error) {
	coordinate, err := domain.ParseCoordinate(coordinateText)
	if err != nil {
		return domain.LocalArtifact{}, err
	}
	return r.local.Scan(coordinate)
}

func (r *Resolver) fetchCached(ctx context.Context, coordinate domain.Coordinate) (domain.Classpath, bool) {
	_, span := r.tracer.Start(ctx, "cache.fetch")
	defer span.End()

	cp, ok := r.cache.Fetch(coordinate)
	span.SetAttribute("cache.hit", ok)
	if ok {
		r.logger.Debug("classpath cache hit for " + coordinate.String())
	}
	return cp, ok
}

// compute asks the build tool for the classpath. A computation failure triggers exactly one
// fetch followed by exactly one more computation.
func (r *Resolver) compute(ctx context.Context, coordinate domain.Coordinate) (domain.Classpath, error) {
	repositories := r.repositories.URLs()

	descriptor, cleanup, err := r.descriptors.Write(repositories, coordinate)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	cp, err := r.buildTool.ClasspathFor(ctx, descriptor)
	if err == nil {
		return cp, nil
	}
	if !errors.Is(err, domain.ErrClasspathComputationFailed) {
		return nil, err
	}

	r.reportMissing(coordinate, err)

	if fetchErr := r.buildTool.Fetch(ctx, coordinate, repositories); fetchErr != nil {
		return nil, fetchErr
	}

	cp, err = r.buildTool.ClasspathFor(ctx, descriptor)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "classpath computation failed again after fetch"), "attempts", 2)
	}
	return cp, nil
}

func (r *Resolver) reportMissing(coordinate domain.Coordinate, cause error) {
	present, err := r.local.Exists(coordinate)
	switch {
	case err != nil:
		r.logger.Warn("cannot check local repository: " + err.Error())
	case !present:
		r.logger.Info("missing artifact " + coordinate.String() + ", fetching")
	default:
		r.logger.Info("classpath computation for " + coordinate.String() + " failed, fetching again")
	}
	r.logger.Debug(cause.Error())
}
