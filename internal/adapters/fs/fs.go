// Package fs provides the filesystem the environment resolvers read from.
package fs

import (
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// New returns the host filesystem. pinto only reads project files itself, so
// the filesystem is read-only.
func New() afero.Fs {
	return afero.NewReadOnlyFs(afero.NewOsFs())
}

// Exists reports whether path exists on fsys.
func Exists(fsys afero.Fs, path string) (bool, error) {
	ok, err := afero.Exists(fsys, path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	return ok, nil
}
