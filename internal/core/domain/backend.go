package domain

// Backend identifies the tool that owns a project's environment.
type Backend uint8

const (
	// BackendPoetry backs the environment with a poetry-managed virtualenv.
	BackendPoetry Backend = iota
	// BackendConda backs the environment with a named conda environment.
	BackendConda
)

// String returns the backend's name.
func (b Backend) String() string {
	switch b {
	case BackendPoetry:
		return "poetry"
	case BackendConda:
		return "conda"
	default:
		return "unknown"
	}
}

// InstallOptions controls an environment install.
type InstallOptions struct {
	// Extras are optional dependency groups to install.
	Extras []string
	// Update refreshes the lock file before installing.
	Update bool
}

// EnvironmentInfo is a summary of a resolved environment.
type EnvironmentInfo struct {
	Project string `yaml:"project"`
	Path    string `yaml:"path"`
	Backend string `yaml:"backend"`
	Name    string `yaml:"name"`
	Root    string `yaml:"root"`
	Exists  bool   `yaml:"exists"`
	BaseEnv string `yaml:"base_env,omitempty"`
}
