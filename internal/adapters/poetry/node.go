package poetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/pinto/internal/adapters/fs"
	"go.trai.ch/pinto/internal/adapters/shell"
	"go.trai.ch/pinto/internal/core/ports"
)

// NodeID is the unique identifier for the poetry manager Graft node.
const NodeID graft.ID = "adapter.poetry"

func init() {
	graft.Register(graft.Node[ports.VenvManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.VenvManager, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(runner, fsys, Executable(os.LookupEnv)), nil
		},
	})
}
