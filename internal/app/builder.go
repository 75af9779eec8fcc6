package app

import (
	"go.trai.ch/jarpath/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpath/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry *telemetry.Provider
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, provider *telemetry.Provider) *Components {
	return &Components{
		App:       app,
		Logger:    logger,
		Telemetry: provider,
	}
}
