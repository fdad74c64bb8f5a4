package environment

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/spf13/afero"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// CondaEnvironment is a project environment backed by a named conda environment.
type CondaEnvironment struct {
	project *domain.Project
	fs      afero.Fs
	conda   ports.CondaClient
	runner  ports.CommandRunner
	env     ports.EnvMutator
	logger  ports.Logger

	// baseEnv is an environment file path or an environment name to clone.
	baseEnv string
	name    string
}

// NewCondaEnvironment builds the environment, resolving its base environment and name.
func NewCondaEnvironment(
	project *domain.Project,
	fs afero.Fs,
	conda ports.CondaClient,
	runner ports.CommandRunner,
	env ports.EnvMutator,
	logger ports.Logger,
) (*CondaEnvironment, error) {
	e := &CondaEnvironment{
		project: project,
		fs:      fs,
		conda:   conda,
		runner:  runner,
		env:     env,
		logger:  logger,
	}

	var err error
	if project.Config.HasBaseEnv() {
		e.baseEnv, e.name, err = e.configuredIdentity()
	} else {
		e.baseEnv, e.name, err = e.discoveredIdentity()
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// configuredIdentity resolves base_env from the project configuration.
func (e *CondaEnvironment) configuredIdentity() (baseEnv, name string, err error) {
	baseEnv = e.project.Config.BaseEnv
	envName := baseEnv

	if domain.IsEnvironmentFile(baseEnv) {
		if !filepath.IsAbs(baseEnv) {
			baseEnv = filepath.Join(e.project.Path, baseEnv)
		}
		envName, err = e.readEnvName(baseEnv)
		if err != nil {
			return "", "", err
		}
	}

	return baseEnv, domain.NormalizeEnvName(envName, e.project.Name), nil
}

// discoveredIdentity uses the nearest environment file in the project directory or
// its ancestors. A file in the project directory names the environment directly. A
// shared file higher up names it only when the name ends in -base, specialized for
// the project; otherwise the project name is used.
func (e *CondaEnvironment) discoveredIdentity() (baseEnv, name string, err error) {
	file, dir, err := e.findEnvironmentFile()
	if err != nil {
		return "", "", err
	}

	name, err = e.readEnvName(file)
	if err != nil {
		return "", "", err
	}

	if filepath.Clean(dir) != filepath.Clean(e.project.Path) {
		if domain.HasBaseSuffix(name) {
			name = domain.NormalizeEnvName(name, e.project.Name)
		} else {
			name = e.project.Name
		}
	}
	return file, name, nil
}

func (e *CondaEnvironment) findEnvironmentFile() (file, dir string, err error) {
	dir = filepath.Clean(e.project.Path)
	for {
		for _, candidate := range domain.EnvironmentFileNames {
			path := filepath.Join(dir, candidate)
			ok, err := afero.Exists(e.fs, path)
			if err != nil {
				return "", "", zerr.With(errors.Join(domain.ErrEnvironmentFileReadFailed, err), "path", path)
			}
			if ok {
				return path, dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", zerr.With(zerr.Wrap(domain.ErrNoEnvironmentFile, "cannot resolve conda environment"), "project", e.project.Path)
		}
		dir = parent
	}
}

func (e *CondaEnvironment) readEnvName(file string) (string, error) {
	data, err := afero.ReadFile(e.fs, file)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrEnvironmentFileReadFailed, err), "path", file)
	}
	name, err := domain.ParseEnvName(data)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid environment file"), "path", file)
	}
	return name, nil
}

// Backend implements ports.Environment.
func (e *CondaEnvironment) Backend() domain.Backend {
	return domain.BackendConda
}

// Name returns the conda environment name.
func (e *CondaEnvironment) Name() string {
	return e.name
}

// BaseEnv returns the environment file or environment name the environment is built from.
func (e *CondaEnvironment) BaseEnv() string {
	return e.baseEnv
}

// Root returns the environment prefix under the conda installation root.
func (e *CondaEnvironment) Root(ctx context.Context) (string, error) {
	root, err := e.conda.RootPrefix(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "envs", e.name), nil
}

// Exists reports whether conda knows an environment with exactly this name.
func (e *CondaEnvironment) Exists(ctx context.Context) (bool, error) {
	return e.envExists(ctx, e.name)
}

func (e *CondaEnvironment) envExists(ctx context.Context, name string) (bool, error) {
	names, err := e.conda.EnvNames(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// Create builds the environment from its environment file, or clones it from the
// base environment.
func (e *CondaEnvironment) Create(ctx context.Context) error {
	exists, err := e.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		e.logger.Warn("Environment " + e.name + " already exists")
		return nil
	}

	source := e.baseEnv
	if domain.IsEnvironmentFile(e.baseEnv) {
		declared, err := e.readEnvName(e.baseEnv)
		if err != nil {
			return err
		}

		declaredExists, err := e.envExists(ctx, declared)
		if err != nil {
			return err
		}
		if !declaredExists {
			e.logger.Info("Creating conda environment " + declared + " from environment file " + e.baseEnv)
			if err := e.conda.CreateFromFile(ctx, e.baseEnv); err != nil {
				return err
			}
		}

		if declared == e.name {
			return nil
		}
		source = declared
	}

	sourceExists, err := e.envExists(ctx, source)
	if err != nil {
		return err
	}
	if !sourceExists {
		return zerr.With(zerr.Wrap(domain.ErrNoBaseEnvironment, "cannot create environment "+e.name), "base_env", source)
	}

	e.logger.Info("Creating environment " + e.name + " by cloning from environment " + source)
	return e.conda.Clone(ctx, e.name, source)
}

// Contains reports whether conda lists other among the environment's packages.
func (e *CondaEnvironment) Contains(ctx context.Context, other *domain.Project) (bool, error) {
	listing, err := e.conda.ListPackages(ctx, e.name)
	if err != nil {
		return false, err
	}

	pattern := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(domain.CondaPackageName(other.Name)) + `\s`)
	return pattern.MatchString(listing), nil
}

// Install runs poetry inside the environment, then drops conda's cached listing of it.
func (e *CondaEnvironment) Install(ctx context.Context, opts domain.InstallOptions) error {
	// The environment's PATH may not include poetry, so it is resolved up front.
	exe := "poetry"
	if v, ok := e.env.Lookup("PINTO_POETRY_EXE"); ok && v != "" {
		exe = v
	}
	if abs, err := e.runner.LookPath(exe); err == nil {
		exe = abs
	}

	subcommand := "install"
	if opts.Update {
		subcommand = "update"
	}
	args := []string{"--directory", e.project.Path, subcommand}
	for _, extra := range opts.Extras {
		args = append(args, "--extras", extra)
	}

	if err := e.Run(ctx, exe, args...); err != nil {
		return err
	}

	root, err := e.Root(ctx)
	if err != nil {
		return err
	}
	e.conda.Invalidate(root)
	return nil
}

// Run executes bin inside the environment through `conda run`.
func (e *CondaEnvironment) Run(ctx context.Context, bin string, args ...string) error {
	argv := append([]string{bin}, args...)
	run := func() error {
		return e.conda.Run(ctx, e.name, argv)
	}

	prefix, ok := e.env.Lookup("CONDA_PREFIX")
	if !e.project.Config.Conda.AppendBaseLDLibraryPath || !ok {
		return run()
	}

	libs := filepath.Join(prefix, "envs", e.name, "lib") + string(os.PathListSeparator) + filepath.Join(prefix, "lib")
	return e.env.Scoped(domain.EnvAppend, map[string]string{"LD_LIBRARY_PATH": libs}, run)
}

var _ ports.Environment = (*CondaEnvironment)(nil)
