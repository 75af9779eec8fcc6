package ports

import "go.trai.ch/jarpath/internal/core/domain"

// ConfigLoader defines the interface for loading the project settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration for the given working directory.
	// Without a config file it returns defaults rooted at cwd.
	Load(cwd string) (*domain.Settings, error)
}
