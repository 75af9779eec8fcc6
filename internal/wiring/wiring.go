// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jarpath/internal/adapters/config"
	_ "go.trai.ch/jarpath/internal/adapters/fs"
	_ "go.trai.ch/jarpath/internal/adapters/logger"
	_ "go.trai.ch/jarpath/internal/adapters/maven"
	_ "go.trai.ch/jarpath/internal/adapters/shell"
	_ "go.trai.ch/jarpath/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/jarpath/internal/app"
)
