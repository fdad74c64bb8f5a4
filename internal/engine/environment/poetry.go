package environment

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// PoetryEnvironment is a project environment backed by a poetry virtualenv.
type PoetryEnvironment struct {
	project *domain.Project
	fs      afero.Fs
	venvs   ports.VenvManager
	runner  ports.CommandRunner
	env     ports.EnvMutator
	logger  ports.Logger

	// venv stays nil until the virtualenv has been created or retrieved.
	venv *domain.Venv
}

// NewPoetryEnvironment builds the environment and, when the virtualenv already
// exists, keeps the handle poetry reports for it.
func NewPoetryEnvironment(
	ctx context.Context,
	project *domain.Project,
	fs afero.Fs,
	venvs ports.VenvManager,
	runner ports.CommandRunner,
	env ports.EnvMutator,
	logger ports.Logger,
) (*PoetryEnvironment, error) {
	e := &PoetryEnvironment{
		project: project,
		fs:      fs,
		venvs:   venvs,
		runner:  runner,
		env:     env,
		logger:  logger,
	}

	info, err := e.info(ctx)
	if err != nil {
		return nil, err
	}
	if info.HasVirtualenv() {
		venv := info.Active
		e.venv = &venv
	}
	return e, nil
}

// Backend implements ports.Environment.
func (e *PoetryEnvironment) Backend() domain.Backend {
	return domain.BackendPoetry
}

// Venv returns the virtualenv handle, or nil before creation.
func (e *PoetryEnvironment) Venv() *domain.Venv {
	return e.venv
}

// Name returns the virtualenv directory name, or the name poetry will generate
// for it when it does not exist yet.
func (e *PoetryEnvironment) Name() string {
	if e.venv != nil {
		return e.venv.Name()
	}
	return domain.GenerateVenvName(e.project.Name, e.project.Path)
}

// Root returns the virtualenv prefix. Before creation it is the environment poetry
// currently resolves for the project.
func (e *PoetryEnvironment) Root(ctx context.Context) (string, error) {
	if e.venv != nil {
		return e.venv.Path, nil
	}
	info, err := e.info(ctx)
	if err != nil {
		return "", err
	}
	return info.Active.Path, nil
}

// Exists reports whether poetry resolves a virtualenv other than the system one.
func (e *PoetryEnvironment) Exists(ctx context.Context) (bool, error) {
	info, err := e.info(ctx)
	if err != nil {
		return false, err
	}
	return info.HasVirtualenv(), nil
}

// Create materializes the virtualenv.
func (e *PoetryEnvironment) Create(ctx context.Context) error {
	if e.venv != nil {
		e.logger.Warn("Environment " + e.Name() + " already exists")
		return nil
	}
	return e.materialize(ctx)
}

// materialize creates or fetches the virtualenv and keeps its handle.
func (e *PoetryEnvironment) materialize(ctx context.Context) error {
	return e.outsideConda(func() error {
		venv, err := e.venvs.Create(ctx, e.project)
		if err != nil {
			return err
		}
		e.venv = venv
		return nil
	})
}

// Contains reports whether other is installed in the virtualenv.
func (e *PoetryEnvironment) Contains(_ context.Context, other *domain.Project) (bool, error) {
	if err := e.requireVenv(); err != nil {
		return false, err
	}
	return e.venvs.HasDistribution(e.venv, domain.DistributionName(other.Name))
}

// Install installs the locked dependencies and then the project itself.
func (e *PoetryEnvironment) Install(ctx context.Context, opts domain.InstallOptions) error {
	if err := e.requireVenv(); err != nil {
		return err
	}

	return e.outsideConda(func() error {
		return e.env.Scoped(domain.EnvInsert, map[string]string{"VIRTUAL_ENV": e.venv.Path}, func() error {
			if opts.Update {
				if err := e.venvs.Lock(ctx, e.project); err != nil {
					return err
				}
			}
			if err := e.venvs.InstallDependencies(ctx, e.project, opts.Extras); err != nil {
				return err
			}
			return e.venvs.InstallProject(ctx, e.project)
		})
	})
}

// Run executes bin from the virtualenv with its bin directory first on PATH.
func (e *PoetryEnvironment) Run(ctx context.Context, bin string, args ...string) error {
	if err := e.requireVenv(); err != nil {
		return err
	}

	argv := append(e.commandFromBin(bin), args...)
	cmd := domain.NewCommand(argv[0], argv[1:]...)

	return e.env.Scoped(domain.EnvAppend, map[string]string{"PATH": e.venv.BinDir()}, func() error {
		code, err := e.runner.Run(ctx, cmd)
		if err != nil {
			return err
		}
		if code != 0 {
			return &domain.ExitError{Command: cmd.String(), Code: code}
		}
		return nil
	})
}

// commandFromBin maps bin to the command that runs it in the virtualenv.
// pip always runs through the environment's interpreter.
func (e *PoetryEnvironment) commandFromBin(bin string) []string {
	if bin == "pip" {
		return []string{e.binPath("python"), "-m", "pip"}
	}
	return []string{e.binPath(bin)}
}

// binPath returns the absolute path of bin when the virtualenv provides it.
func (e *PoetryEnvironment) binPath(bin string) string {
	path := filepath.Join(e.venv.BinDir(), bin)
	if ok, err := afero.Exists(e.fs, path); err == nil && ok {
		return path
	}
	return bin
}

func (e *PoetryEnvironment) info(ctx context.Context) (*domain.VenvInfo, error) {
	var info *domain.VenvInfo
	err := e.outsideConda(func() error {
		var err error
		info, err = e.venvs.Info(ctx, e.project)
		return err
	})
	return info, err
}

// outsideConda runs fn with an active conda environment reported as base, so poetry
// does not mistake a pinto conda environment for the project's virtualenv.
func (e *PoetryEnvironment) outsideConda(fn func() error) error {
	return e.env.Scoped(domain.EnvReplace, map[string]string{"CONDA_DEFAULT_ENV": "base"}, fn)
}

func (e *PoetryEnvironment) requireVenv() error {
	if e.venv == nil {
		return zerr.With(zerr.Wrap(domain.ErrEnvironmentNotCreated, "environment "+e.Name()), "project", e.project.Name)
	}
	return nil
}

var _ ports.Environment = (*PoetryEnvironment)(nil)
