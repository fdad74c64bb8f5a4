// Package poetry drives poetry's virtualenv management through its command line.
package poetry

import (
	"bufio"
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultExecutable is used when no poetry executable is configured.
const DefaultExecutable = "poetry"

// Executable returns the poetry binary named by PINTO_POETRY_EXE.
func Executable(lookup func(string) (string, bool)) string {
	if v, ok := lookup("PINTO_POETRY_EXE"); ok && v != "" {
		return v
	}
	return DefaultExecutable
}

// Manager implements ports.VenvManager.
type Manager struct {
	runner ports.CommandRunner
	fs     afero.Fs
	exe    string
}

// NewManager creates a Manager that invokes exe.
func NewManager(runner ports.CommandRunner, fs afero.Fs, exe string) *Manager {
	if exe == "" {
		exe = DefaultExecutable
	}
	return &Manager{runner: runner, fs: fs, exe: exe}
}

// Info runs `poetry env info` for the project.
func (m *Manager) Info(ctx context.Context, project *domain.Project) (*domain.VenvInfo, error) {
	stdout, err := m.output(ctx, project, "env", "info", "--no-ansi")
	if err != nil {
		return nil, err
	}

	info, err := parseEnvInfo(stdout)
	if err != nil {
		return nil, zerr.With(err, "project", project.Name)
	}
	return info, nil
}

// parseEnvInfo reads the Path entries of the virtualenv and system sections.
// A project without a virtualenv reports the system environment as active.
func parseEnvInfo(out string) (*domain.VenvInfo, error) {
	var section, venvPath, systemPath string

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "Virtualenv":
			section = "virtualenv"
			continue
		case "System", "Base":
			section = "system"
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) != "Path" {
			continue
		}
		value = strings.TrimSpace(value)

		switch section {
		case "virtualenv":
			venvPath = value
		case "system":
			systemPath = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(domain.ErrPoetryEnvInfoParseFailed, err)
	}

	if systemPath == "" || systemPath == "NA" {
		return nil, zerr.Wrap(domain.ErrPoetryEnvInfoParseFailed, "no system environment path")
	}

	info := &domain.VenvInfo{System: domain.Venv{Path: systemPath}}
	if venvPath == "" || venvPath == "NA" {
		info.Active = info.System
	} else {
		info.Active = domain.Venv{Path: venvPath}
	}
	return info, nil
}

// Create runs `poetry env use python3`, which creates the virtualenv when missing,
// and returns the environment poetry resolves afterwards.
func (m *Manager) Create(ctx context.Context, project *domain.Project) (*domain.Venv, error) {
	if _, err := m.output(ctx, project, "env", "use", "python3", "--no-ansi"); err != nil {
		return nil, err
	}

	info, err := m.Info(ctx, project)
	if err != nil {
		return nil, err
	}
	if !info.HasVirtualenv() {
		return nil, zerr.With(zerr.Wrap(domain.ErrEnvironmentNotCreated, "poetry did not create a virtualenv"), "project", project.Name)
	}

	venv := info.Active
	return &venv, nil
}

// Lock runs `poetry lock`.
func (m *Manager) Lock(ctx context.Context, project *domain.Project) error {
	return m.run(ctx, project, "lock", "--no-ansi")
}

// InstallDependencies runs `poetry install --no-root` with one --extras flag per extra.
func (m *Manager) InstallDependencies(ctx context.Context, project *domain.Project, extras []string) error {
	args := []string{"install", "--no-root", "--no-ansi"}
	for _, extra := range extras {
		args = append(args, "--extras", extra)
	}
	return m.run(ctx, project, args...)
}

// InstallProject runs `poetry install --only-root`, an editable install of the project.
func (m *Manager) InstallProject(ctx context.Context, project *domain.Project) error {
	return m.run(ctx, project, "install", "--only-root", "--no-ansi")
}

// HasDistribution looks for name among the dist-info and egg-info entries of the
// environment's site-packages directories.
func (m *Manager) HasDistribution(venv *domain.Venv, name string) (bool, error) {
	pattern := filepath.Join(venv.Path, "lib", "python*", "site-packages", "*")
	entries, err := afero.Glob(m.fs, pattern)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to scan site-packages"), "venv", venv.Path)
	}

	want := normalizeDistName(name)
	for _, entry := range entries {
		base := filepath.Base(entry)
		stem := strings.TrimSuffix(strings.TrimSuffix(base, ".dist-info"), ".egg-info")
		if stem == base {
			continue
		}
		dist, _, _ := strings.Cut(stem, "-")
		if normalizeDistName(dist) == want {
			return true, nil
		}
	}
	return false, nil
}

func normalizeDistName(name string) string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(strings.ToLower(name))
}

func (m *Manager) command(project *domain.Project, args ...string) *domain.Command {
	cmd := domain.NewCommand(m.exe, args...)
	cmd.Dir = project.Path
	return cmd
}

func (m *Manager) output(ctx context.Context, project *domain.Project, args ...string) (string, error) {
	cmd := m.command(project, args...)
	res, err := m.runner.Output(ctx, cmd)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		var exitErr error = &domain.ExitError{Command: cmd.String(), Code: res.ExitCode}
		if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
			exitErr = zerr.With(exitErr, "stderr", stderr)
		}
		return "", exitErr
	}
	return res.Stdout, nil
}

func (m *Manager) run(ctx context.Context, project *domain.Project, args ...string) error {
	cmd := m.command(project, args...)
	code, err := m.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if code != 0 {
		return &domain.ExitError{Command: cmd.String(), Code: code}
	}
	return nil
}

var _ ports.VenvManager = (*Manager)(nil)
