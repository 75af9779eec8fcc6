package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpath/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpath/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpath/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpath/internal/adapters/maven"     //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpath/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpath/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/jarpath/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			maven.DescriptorWriterNodeID,
			fs.VerifierNodeID,
			logger.NodeID,
			telemetry.ProviderNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.ProviderNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	descriptors, err := graft.Dep[ports.DescriptorWriter](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, runner, descriptors, verifier, log, provider.Tracer()), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[*telemetry.Provider](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, provider), nil
}
