package ports

import "go.trai.ch/jarpath/internal/core/domain"

// ClasspathCache defines the interface for the persisted coordinate to classpath mapping.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ClasspathCache interface {
	// Fetch returns the stored classpath only if every entry still exists on disk.
	Fetch(coordinate domain.Coordinate) (domain.Classpath, bool)

	// Store overwrites the entry and persists the whole cache.
	Store(coordinate domain.Coordinate, classpath domain.Classpath) error

	// Entries lists every stored entry sorted by key.
	Entries() []domain.CacheEntry
}
