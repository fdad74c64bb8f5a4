// Package conda drives the conda command line.
package conda

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultExecutable is used when no conda executable is configured.
const DefaultExecutable = "conda"

// Executable returns the conda binary named by PINTO_CONDA_EXE or CONDA_EXE.
func Executable(lookup func(string) (string, bool)) string {
	for _, key := range []string{"PINTO_CONDA_EXE", "CONDA_EXE"} {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
	}
	return DefaultExecutable
}

// Client implements ports.CondaClient on top of a CommandRunner.
type Client struct {
	runner ports.CommandRunner
	logger ports.Logger
	exe    string

	mu       sync.Mutex
	root     string
	listings map[string]string
}

// NewClient creates a Client that invokes exe.
func NewClient(runner ports.CommandRunner, logger ports.Logger, exe string) *Client {
	if exe == "" {
		exe = DefaultExecutable
	}
	return &Client{
		runner:   runner,
		logger:   logger,
		exe:      exe,
		listings: make(map[string]string),
	}
}

// EnvNames lists the names of all environments known to conda.
func (c *Client) EnvNames(ctx context.Context) ([]string, error) {
	stdout, err := c.output(ctx, "info", "--envs")
	if err != nil {
		return nil, err
	}
	return parseEnvNames(stdout), nil
}

func parseEnvNames(listing string) []string {
	var names []string
	for _, line := range strings.Split(listing, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		names = append(names, fields[0])
	}
	return names
}

// CreateFromFile runs `conda env create -f file`.
func (c *Client) CreateFromFile(ctx context.Context, file string) error {
	cmd := c.command("env", "create", "-f", file)
	res, err := c.runner.Output(ctx, cmd)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		createErr := zerr.Wrap(domain.ErrCondaCreateFailed, "conda command failed")
		createErr = zerr.With(createErr, "command", cmd.String())
		createErr = zerr.With(createErr, "exit_code", res.ExitCode)
		return zerr.With(createErr, "stderr", strings.TrimSpace(res.Stderr))
	}

	if out := strings.TrimSpace(res.Stdout); out != "" {
		c.logger.Info(out)
	}
	return nil
}

// Clone runs `conda create -n name --clone source`.
func (c *Client) Clone(ctx context.Context, name, source string) error {
	_, err := c.output(ctx, "create", "-n", name, "--clone", source)
	return err
}

// ListPackages returns `conda list -n name`, cached by environment prefix.
func (c *Client) ListPackages(ctx context.Context, name string) (string, error) {
	prefix, prefixErr := c.envPrefix(ctx, name)
	if prefixErr == nil {
		c.mu.Lock()
		listing, ok := c.listings[prefix]
		c.mu.Unlock()
		if ok {
			return listing, nil
		}
	}

	listing, err := c.output(ctx, "list", "-n", name)
	if err != nil {
		return "", err
	}

	if prefixErr == nil {
		c.mu.Lock()
		c.listings[prefix] = listing
		c.mu.Unlock()
	}
	return listing, nil
}

// Invalidate drops the cached listing of the environment at prefix.
func (c *Client) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.listings, filepath.Clean(prefix))
}

// Run executes argv inside the named environment with the caller's streams.
func (c *Client) Run(ctx context.Context, name string, argv []string) error {
	args := append([]string{"run", "-n", name, "--no-capture-output"}, argv...)
	cmd := c.command(args...)

	code, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if code != 0 {
		return &domain.ExitError{Command: cmd.String(), Code: code}
	}
	return nil
}

// RootPrefix returns the conda installation root. CONDA_ROOT takes precedence over
// `conda info --base`; the answer is cached.
func (c *Client) RootPrefix(ctx context.Context) (string, error) {
	c.mu.Lock()
	root := c.root
	c.mu.Unlock()
	if root != "" {
		return root, nil
	}

	if v, ok := os.LookupEnv("CONDA_ROOT"); ok && v != "" {
		root = v
	} else {
		stdout, err := c.output(ctx, "info", "--base")
		if err != nil {
			return "", zerr.With(errors.Join(domain.ErrCondaRootUnknown, err), "command", c.exe+" info --base")
		}
		root = strings.TrimSpace(stdout)
		if root == "" {
			return "", zerr.Wrap(domain.ErrCondaRootUnknown, "empty output from conda info --base")
		}
	}

	root = filepath.Clean(root)
	c.mu.Lock()
	c.root = root
	c.mu.Unlock()
	return root, nil
}

func (c *Client) envPrefix(ctx context.Context, name string) (string, error) {
	root, err := c.RootPrefix(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "envs", name), nil
}

func (c *Client) command(args ...string) *domain.Command {
	return domain.NewCommand(c.exe, args...)
}

// output runs a conda subcommand and returns its stdout. A non-zero exit becomes an ExitError.
func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	cmd := c.command(args...)
	res, err := c.runner.Output(ctx, cmd)
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

var _ ports.CondaClient = (*Client)(nil)
