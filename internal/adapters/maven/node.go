package maven

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpath/internal/core/ports"
)

// DescriptorWriterNodeID is the unique identifier for the descriptor writer Graft node.
const DescriptorWriterNodeID graft.ID = "adapter.maven.descriptor"

func init() {
	graft.Register(graft.Node[ports.DescriptorWriter]{
		ID:        DescriptorWriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorWriter, error) {
			return NewDescriptorWriter(""), nil
		},
	})
}
