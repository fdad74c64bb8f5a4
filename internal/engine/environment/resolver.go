// Package environment resolves a project's environment and implements the
// poetry and conda backends behind ports.Environment.
package environment

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// SelectBackend decides which backend owns the project at projectPath from its
// poetry.toml. Conda is selected only when virtualenvs.create is the boolean false.
func SelectBackend(fs afero.Fs, projectPath string) (domain.Backend, error) {
	path := filepath.Join(projectPath, domain.PoetrySettingsFileName)

	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.BackendPoetry, nil
	}
	if err != nil {
		return 0, zerr.With(errors.Join(domain.ErrSettingsParseFailed, err), "path", path)
	}

	var settings map[string]any
	if err := toml.Unmarshal(data, &settings); err != nil {
		return 0, zerr.With(errors.Join(domain.ErrSettingsParseFailed, err), "path", path)
	}

	raw, ok := settings["virtualenvs"]
	if !ok {
		return domain.BackendPoetry, nil
	}
	virtualenvs, ok := raw.(map[string]any)
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrSettingsParseFailed, "virtualenvs is not a table"), "path", path)
	}

	if create, ok := virtualenvs["create"].(bool); ok && !create {
		return domain.BackendConda, nil
	}
	return domain.BackendPoetry, nil
}

// Resolver implements ports.EnvironmentResolver.
type Resolver struct {
	fs     afero.Fs
	venvs  ports.VenvManager
	conda  ports.CondaClient
	runner ports.CommandRunner
	env    ports.EnvMutator
	logger ports.Logger
}

// NewResolver creates a Resolver over the given collaborators.
func NewResolver(
	fs afero.Fs,
	venvs ports.VenvManager,
	conda ports.CondaClient,
	runner ports.CommandRunner,
	env ports.EnvMutator,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		fs:     fs,
		venvs:  venvs,
		conda:  conda,
		runner: runner,
		env:    env,
		logger: logger,
	}
}

// Resolve selects the project's backend and builds its environment.
// A fresh environment is built on every call.
func (r *Resolver) Resolve(ctx context.Context, project *domain.Project) (ports.Environment, error) {
	backend, err := SelectBackend(r.fs, project.Path)
	if err != nil {
		return nil, err
	}

	switch backend {
	case domain.BackendConda:
		return NewCondaEnvironment(project, r.fs, r.conda, r.runner, r.env, r.logger)
	default:
		return NewPoetryEnvironment(ctx, project, r.fs, r.venvs, r.runner, r.env, r.logger)
	}
}

var _ ports.EnvironmentResolver = (*Resolver)(nil)
