package ports

import (
	"context"

	"go.trai.ch/jarpath/internal/core/domain"
)

// CommandRunner defines the interface for running subprocesses.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run starts the command and blocks until it exits.
	// A non-zero exit is reported through CommandResult.ExitCode, not as an error.
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
