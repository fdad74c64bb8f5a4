// Package config loads project configuration from pyproject.toml.
package config

import (
	"errors"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ProjectLoader.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads dir/pyproject.toml and returns the project it describes.
func (l *Loader) Load(dir string) (*domain.Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrProjectConfigReadFailed, err), "dir", dir)
	}

	path := filepath.Join(abs, domain.PyProjectFileName)
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrProjectConfigReadFailed, err), "path", path)
	}

	var pyproject PyProject
	if err := toml.Unmarshal(data, &pyproject); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrProjectConfigParseFailed, err), "path", path)
	}

	name := pyproject.name()
	if name == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingProjectName, "invalid pyproject.toml"), "path", path)
	}

	return &domain.Project{
		Name:   name,
		Path:   abs,
		Config: pyproject.Tool.Pinto,
	}, nil
}

var _ ports.ProjectLoader = (*Loader)(nil)
