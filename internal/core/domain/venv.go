package domain

import "path/filepath"

// Venv is a handle to a materialized virtual environment.
type Venv struct {
	// Path is the environment prefix.
	Path string
}

// Name returns the environment directory name.
func (v *Venv) Name() string {
	return filepath.Base(v.Path)
}

// BinDir returns the directory holding the environment's executables.
func (v *Venv) BinDir() string {
	return filepath.Join(v.Path, "bin")
}

// VenvInfo is what the virtualenv manager reports for a project.
type VenvInfo struct {
	// Active is the environment the manager would use. It equals System when the
	// project has no virtualenv yet.
	Active Venv
	// System is the interpreter environment poetry falls back to.
	System Venv
}

// HasVirtualenv reports whether the manager resolved a dedicated virtualenv.
func (i *VenvInfo) HasVirtualenv() bool {
	return i.Active.Path != "" && filepath.Clean(i.Active.Path) != filepath.Clean(i.System.Path)
}
