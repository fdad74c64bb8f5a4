// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pinto/internal/core/domain"
)

// Environment is a project's environment, whichever backend owns it.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// Backend reports which tool manages the environment.
	Backend() domain.Backend

	// Name returns the environment's resolved name.
	Name() string

	// Root returns the environment prefix. Before creation it may be a best guess.
	Root(ctx context.Context) (string, error)

	// Exists reports whether the environment has been materialized.
	Exists(ctx context.Context) (bool, error)

	// Create materializes the environment. Calling it on an existing environment
	// logs a warning and does nothing.
	Create(ctx context.Context) error

	// Install installs the project and its dependencies into the environment.
	Install(ctx context.Context, opts domain.InstallOptions) error

	// Run executes bin inside the environment and waits for it.
	// A non-zero exit is returned as *domain.ExitError.
	Run(ctx context.Context, bin string, args ...string) error

	// Contains reports whether other is installed in the environment.
	Contains(ctx context.Context, other *domain.Project) (bool, error)
}

// EnvironmentResolver picks and builds the environment of a project.
type EnvironmentResolver interface {
	// Resolve returns the project's environment with its identity already resolved.
	Resolve(ctx context.Context, project *domain.Project) (Environment, error)
}
