package ports

import "go.trai.ch/jarpath/internal/core/domain"

// DescriptorWriter defines the interface for writing transient project descriptors.
//
//go:generate go run go.uber.org/mock/mockgen -source=descriptor.go -destination=mocks/mock_descriptor.go -package=mocks
type DescriptorWriter interface {
	// Write renders a descriptor declaring the repositories and the single dependency.
	// The returned cleanup func removes it and must be called on every path.
	Write(repositories []string, dependency domain.Coordinate) (path string, cleanup func(), err error)
}
