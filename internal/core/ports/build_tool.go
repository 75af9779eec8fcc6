package ports

import (
	"context"

	"go.trai.ch/jarpath/internal/core/domain"
)

// BuildTool defines the interface for the external dependency resolution tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_tool.go -destination=mocks/mock_build_tool.go -package=mocks
type BuildTool interface {
	// Fetch downloads the artifact into the local repository, searching the given remote repositories
	// in addition to the ones configured on the machine.
	Fetch(ctx context.Context, coordinate domain.Coordinate, repositories []string) error

	// ClasspathFor computes the compile-scope classpath of the project described by the descriptor file.
	ClasspathFor(ctx context.Context, descriptorPath string) (domain.Classpath, error)
}
