package domain

const (
	// PyProjectFileName is the project configuration file.
	PyProjectFileName = "pyproject.toml"
	// PoetrySettingsFileName is the per-project poetry settings file.
	PoetrySettingsFileName = "poetry.toml"
)

// EnvironmentFileNames are the environment-definition file names, in lookup order.
var EnvironmentFileNames = []string{"environment.yaml", "environment.yml"}

// Project is a python project whose environment pinto manages.
type Project struct {
	// Name is the distribution name declared in pyproject.toml.
	Name string
	// Path is the absolute project directory.
	Path string
	// Config holds the [tool.pinto] table.
	Config ProjectConfig
}

// ProjectConfig is the pinto-specific project configuration.
type ProjectConfig struct {
	// BaseEnv names a conda environment, or an environment file, to build on.
	BaseEnv string `toml:"base_env" yaml:"base_env,omitempty"`
	// Conda holds conda-only options.
	Conda CondaConfig `toml:"conda" yaml:"conda,omitempty"`
}

// CondaConfig holds options for conda-backed environments.
type CondaConfig struct {
	// AppendBaseLDLibraryPath adds the env and base env lib dirs to LD_LIBRARY_PATH on run.
	AppendBaseLDLibraryPath bool `toml:"append_base_ld_library_path" yaml:"append_base_ld_library_path,omitempty"`
}

// HasBaseEnv reports whether base_env was configured.
func (c ProjectConfig) HasBaseEnv() bool {
	return c.BaseEnv != ""
}
