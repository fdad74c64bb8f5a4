//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var pintoBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "pinto-e2e-*")
	if err != nil {
		panic(err)
	}

	pintoBinary = filepath.Join(tmpDir, "pinto")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", pintoBinary, "./cmd/pinto")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build pinto binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(pintoBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	// Keep the host's tools out of the scripts.
	env.Setenv("PINTO_CONDA_EXE", filepath.Join(env.WorkDir, "bin", "conda"))
	env.Setenv("PINTO_POETRY_EXE", filepath.Join(env.WorkDir, "bin", "poetry"))
	env.Setenv("CONDA_ROOT", "/opt/conda")

	return nil
}
