package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpath/internal/adapters/logger"
	"go.trai.ch/jarpath/internal/core/ports"
)

// ProviderNodeID is the unique identifier for the telemetry provider Graft node.
const ProviderNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Provider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(NewLogBridge(log)), nil
		},
	})
}
