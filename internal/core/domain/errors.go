package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedCoordinate is returned when a coordinate does not split into 3, 4 or 5 segments.
	ErrMalformedCoordinate = zerr.New("malformed coordinate, expected group:artifact[:packaging[:classifier]]:version")

	// ErrEmptyCoordinateField is returned when a segment of a coordinate is blank.
	ErrEmptyCoordinateField = zerr.New("coordinate contains an empty field")

	// ErrNoCoordinatesSpecified is returned when a command is invoked without coordinates.
	ErrNoCoordinatesSpecified = zerr.New("no coordinates specified")

	// ErrInvalidRepositoryURL is returned when a repository URL is blank.
	ErrInvalidRepositoryURL = zerr.New("invalid repository URL")

	// ErrFetchFailed is returned when the build tool could not fetch an artifact.
	ErrFetchFailed = zerr.New("failed to fetch artifact")

	// ErrClasspathComputationFailed is returned when the build tool exits non-zero
	// or produces no classpath marker line.
	ErrClasspathComputationFailed = zerr.New("failed to compute classpath")

	// ErrClasspathMarkerMissing is returned when the build tool output has no classpath marker line.
	ErrClasspathMarkerMissing = zerr.New("build tool output contains no classpath marker")

	// ErrBuildToolUnavailable is returned when the build tool executable cannot be started.
	ErrBuildToolUnavailable = zerr.New("build tool could not be started")

	// ErrResolutionFailed is returned when a coordinate cannot be resolved to a classpath.
	ErrResolutionFailed = zerr.New("resolution failed")

	// ErrDescriptorWriteFailed is returned when the transient project descriptor cannot be written.
	ErrDescriptorWriteFailed = zerr.New("failed to write project descriptor")

	// ErrDescriptorRenderFailed is returned when the project descriptor cannot be rendered.
	ErrDescriptorRenderFailed = zerr.New("failed to render project descriptor")

	// ErrCacheLoadFailed is returned when the persisted classpath cache cannot be read or parsed.
	ErrCacheLoadFailed = zerr.New("failed to load classpath cache")

	// ErrCacheStoreFailed is returned when the persisted classpath cache cannot be written.
	ErrCacheStoreFailed = zerr.New("failed to store classpath cache")

	// ErrArtifactScanFailed is returned when an artifact directory cannot be listed.
	ErrArtifactScanFailed = zerr.New("failed to scan artifact directory")

	// ErrPathStatFailed is returned when stating a path fails for a reason other than absence.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrInvalidProperty is returned when a property override is not in key=value form.
	ErrInvalidProperty = zerr.New("invalid property, expected key=value")

	// ErrInvalidOutputFormat is returned when an unknown output format is requested.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'classpath', 'lines' or 'json'")
)
