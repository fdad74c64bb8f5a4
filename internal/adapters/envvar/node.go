package envvar

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinto/internal/core/ports"
)

// NodeID is the unique identifier for the environment mutator Graft node.
const NodeID graft.ID = "adapter.env_mutator"

func init() {
	graft.Register(graft.Node[ports.EnvMutator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.EnvMutator, error) {
			return New(), nil
		},
	})
}
