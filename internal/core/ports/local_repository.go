package ports

import "go.trai.ch/jarpath/internal/core/domain"

// LocalRepository defines the interface for inspecting the local artifact storage root.
//
//go:generate go run go.uber.org/mock/mockgen -source=local_repository.go -destination=mocks/mock_local_repository.go -package=mocks
type LocalRepository interface {
	// Root returns the storage root directory.
	Root() string

	// Path returns the directory that holds the artifact's files.
	Path(coordinate domain.Coordinate) string

	// Scan lists the artifact's files. A missing directory yields an empty artifact, not an error.
	Scan(coordinate domain.Coordinate) (domain.LocalArtifact, error)

	// Exists reports whether the artifact's descriptor is present.
	Exists(coordinate domain.Coordinate) (bool, error)
}
