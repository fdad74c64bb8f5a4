package ports

import (
	"context"

	"go.trai.ch/pinto/internal/core/domain"
)

// VenvManager drives poetry's virtualenv management for a project.
//
//go:generate go run go.uber.org/mock/mockgen -source=venv_manager.go -destination=mocks/mock_venv_manager.go -package=mocks
type VenvManager interface {
	// Info reports the environment poetry currently resolves for the project and the
	// system environment it falls back to.
	Info(ctx context.Context, project *domain.Project) (*domain.VenvInfo, error)

	// Create materializes the project's virtualenv, or fetches it if it already exists.
	Create(ctx context.Context, project *domain.Project) (*domain.Venv, error)

	// Lock refreshes the project's lock file.
	Lock(ctx context.Context, project *domain.Project) error

	// InstallDependencies installs the locked dependencies, without the project itself.
	InstallDependencies(ctx context.Context, project *domain.Project, extras []string) error

	// InstallProject installs the project itself in development mode.
	InstallProject(ctx context.Context, project *domain.Project) error

	// HasDistribution reports whether a distribution is installed in venv.
	HasDistribution(venv *domain.Venv, name string) (bool, error)
}
