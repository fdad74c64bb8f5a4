package environment_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinto/internal/core/domain"
)

var project = &domain.Project{Name: "proj", Path: "/work/proj"}

func ptr[T any](v T) *T {
	return &v
}

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func noVenvInfo() *domain.VenvInfo {
	return &domain.VenvInfo{
		Active: domain.Venv{Path: "/usr"},
		System: domain.Venv{Path: "/usr"},
	}
}

func venvInfo(path string) *domain.VenvInfo {
	return &domain.VenvInfo{
		Active: domain.Venv{Path: path},
		System: domain.Venv{Path: "/usr"},
	}
}
