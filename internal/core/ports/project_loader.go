package ports

import "go.trai.ch/pinto/internal/core/domain"

// ProjectLoader defines the interface for loading a project's configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads pyproject.toml from dir and returns the project it describes.
	Load(dir string) (*domain.Project, error)
}
