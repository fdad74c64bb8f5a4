// Package app implements the application layer for pinto.
package app

import (
	"context"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.ProjectLoader
	resolver ports.EnvironmentResolver
	logger   ports.Logger
}

// New creates a new App instance.
func New(loader ports.ProjectLoader, resolver ports.EnvironmentResolver, log ports.Logger) *App {
	return &App{
		loader:   loader,
		resolver: resolver,
		logger:   log,
	}
}

// resolve loads the project in dir and resolves its environment.
func (a *App) resolve(ctx context.Context, dir string) (*domain.Project, ports.Environment, error) {
	project, err := a.loader.Load(dir)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load project")
	}

	env, err := a.resolver.Resolve(ctx, project)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to resolve environment"), "project", project.Name)
	}
	return project, env, nil
}

// Exists reports whether the environment of the project in dir has been created.
func (a *App) Exists(ctx context.Context, dir string) (bool, error) {
	_, env, err := a.resolve(ctx, dir)
	if err != nil {
		return false, err
	}
	return env.Exists(ctx)
}

// Create creates the environment of the project in dir.
func (a *App) Create(ctx context.Context, dir string) error {
	_, env, err := a.resolve(ctx, dir)
	if err != nil {
		return err
	}
	return env.Create(ctx)
}

// Install installs the project in dir into its environment, creating the
// environment first when needed.
func (a *App) Install(ctx context.Context, dir string, opts domain.InstallOptions) error {
	project, env, err := a.resolve(ctx, dir)
	if err != nil {
		return err
	}

	exists, err := env.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := env.Create(ctx); err != nil {
			return err
		}
	}

	a.logger.Info("Installing project " + project.Name + " into environment " + env.Name())
	return env.Install(ctx, opts)
}

// Run executes bin in the environment of the project in dir.
func (a *App) Run(ctx context.Context, dir, bin string, args []string) error {
	_, env, err := a.resolve(ctx, dir)
	if err != nil {
		return err
	}
	return env.Run(ctx, bin, args...)
}

// Contains reports whether the project in otherDir is installed in the environment
// of the project in dir.
func (a *App) Contains(ctx context.Context, dir, otherDir string) (bool, error) {
	_, env, err := a.resolve(ctx, dir)
	if err != nil {
		return false, err
	}

	other, err := a.loader.Load(otherDir)
	if err != nil {
		return false, zerr.Wrap(err, "failed to load project")
	}
	return env.Contains(ctx, other)
}

// baseEnver is implemented by environments built on top of another environment.
type baseEnver interface {
	BaseEnv() string
}

// Info summarizes the environment of the project in dir.
func (a *App) Info(ctx context.Context, dir string) (*domain.EnvironmentInfo, error) {
	project, env, err := a.resolve(ctx, dir)
	if err != nil {
		return nil, err
	}

	// Backends may scope environment mutations around each query, so these run in turn.
	exists, err := env.Exists(ctx)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to inspect environment"), "environment", env.Name())
	}

	root, err := env.Root(ctx)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to inspect environment"), "environment", env.Name())
	}

	info := &domain.EnvironmentInfo{
		Project: project.Name,
		Path:    project.Path,
		Backend: env.Backend().String(),
		Name:    env.Name(),
		Root:    root,
		Exists:  exists,
	}
	if b, ok := env.(baseEnver); ok {
		info.BaseEnv = b.BaseEnv()
	}
	return info, nil
}
