package ports

import (
	"context"

	"go.trai.ch/pinto/internal/core/domain"
)

// CommandRunner spawns external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run starts the command attached to the caller's standard streams and waits for it.
	// It returns the child's exit code. The error is non-nil only when the command
	// could not be started.
	Run(ctx context.Context, cmd *domain.Command) (int, error)

	// Output runs the command with its standard streams captured.
	// A non-zero exit is reported through the result, not the error.
	Output(ctx context.Context, cmd *domain.Command) (*domain.CommandResult, error)

	// LookPath resolves an executable name against the current PATH.
	LookPath(name string) (string, error)
}
