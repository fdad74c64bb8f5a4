package environment

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/pinto/internal/adapters/conda"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinto/internal/adapters/envvar" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinto/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinto/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinto/internal/adapters/poetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinto/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinto/internal/core/ports"
)

// NodeID is the unique identifier for the environment resolver Graft node.
const NodeID graft.ID = "engine.environment_resolver"

func init() {
	graft.Register(graft.Node[ports.EnvironmentResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			poetry.NodeID,
			conda.NodeID,
			shell.NodeID,
			envvar.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.EnvironmentResolver, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}

			venvs, err := graft.Dep[ports.VenvManager](ctx)
			if err != nil {
				return nil, err
			}

			condaClient, err := graft.Dep[ports.CondaClient](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			env, err := graft.Dep[ports.EnvMutator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(fsys, venvs, condaClient, runner, env, log), nil
		},
	})
}
