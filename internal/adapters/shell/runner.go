// Package shell runs external commands for the environment backends.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner attached to the given standard streams.
func NewRunner(stdin io.Reader, stdout, stderr io.Writer) *Runner {
	return &Runner{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run executes the command with the runner's streams and waits for it.
// A non-zero exit status is reported through the returned code, not as an error.
func (r *Runner) Run(ctx context.Context, command *domain.Command) (int, error) {
	cmd, err := r.build(ctx, command)
	if err != nil {
		return -1, err
	}
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	return wait(cmd, command)
}

// Output executes the command and captures both output streams.
func (r *Runner) Output(ctx context.Context, command *domain.Command) (*domain.CommandResult, error) {
	cmd, err := r.build(ctx, command)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code, err := wait(cmd, command)
	if err != nil {
		return nil, err
	}

	return &domain.CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: code,
	}, nil
}

// LookPath resolves name against the PATH of the current process environment.
func (r *Runner) LookPath(name string) (string, error) {
	if filepath.IsAbs(name) {
		if err := findExecutable(name); err != nil {
			return "", err
		}
		return name, nil
	}
	return lookPath(name, os.Environ())
}

func (r *Runner) build(ctx context.Context, command *domain.Command) (*exec.Cmd, error) {
	if command == nil || command.Name == "" {
		return nil, zerr.Wrap(domain.ErrCommandStartFailed, "empty command")
	}

	// The environment is read at call time so scoped mutations are visible.
	env := command.Env
	if env == nil {
		env = os.Environ()
	}

	executable := command.Name
	if !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command.Args...) //nolint:gosec // caller provided command

	// Keep the name as invoked in Args[0].
	if len(cmd.Args) > 0 {
		cmd.Args[0] = command.Name
	}
	cmd.Dir = command.Dir
	cmd.Env = env

	return cmd, nil
}

func wait(cmd *exec.Cmd, command *domain.Command) (int, error) {
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}

	return -1, zerr.With(errors.Join(domain.ErrCommandStartFailed, err), "command", command.String())
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

var _ ports.CommandRunner = (*Runner)(nil)
