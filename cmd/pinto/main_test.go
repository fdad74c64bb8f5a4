package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pinto/internal/app"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockProjectLoader
	resolver *mocks.MockEnvironmentResolver
	logger   *mocks.MockLogger
	env      *mocks.MockEnvironment
	provider ComponentProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockProjectLoader(ctrl),
		resolver: mocks.NewMockEnvironmentResolver(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		env:      mocks.NewMockEnvironment(ctrl),
	}

	application := app.New(f.loader, f.resolver, f.logger)
	f.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: f.logger,
		}, func() {}, nil
	}
	return f
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, io.Discard, f.provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "pinto version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	f := newFixture(t)

	loadErr := errors.New("load failed")
	f.loader.EXPECT().Load(".").Return(nil, loadErr)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, loadErr)
	})

	exitCode := run(context.Background(), []string{"create"}, io.Discard, io.Discard, f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ExitCode verifies that a failing child process sets the exit status without logging.
func TestRun_ExitCode(t *testing.T) {
	f := newFixture(t)

	project := &domain.Project{Name: "app", Path: "/work/app"}
	f.loader.EXPECT().Load(".").Return(project, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), project).Return(f.env, nil)
	f.env.EXPECT().Run(gomock.Any(), "pytest", "-x").Return(&domain.ExitError{Command: "pytest -x", Code: 7})

	exitCode := run(context.Background(), []string{"run", "pytest", "-x"}, io.Discard, io.Discard, f.provider)
	assert.Equal(t, 7, exitCode)
}

// TestRun_Canceled verifies that a canceled context reaches the environment.
func TestRun_Canceled(t *testing.T) {
	f := newFixture(t)

	project := &domain.Project{Name: "app", Path: "/work/app"}
	f.loader.EXPECT().Load(".").Return(project, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), project).Return(f.env, nil)
	f.env.EXPECT().Create(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		return ctx.Err()
	})
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, context.Canceled)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exitCode := run(ctx, []string{"create"}, io.Discard, io.Discard, f.provider)
	assert.Equal(t, 1, exitCode)
}
