package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingProjectName is returned when pyproject.toml declares no project name.
	ErrMissingProjectName = zerr.New("missing project name")

	// ErrProjectConfigReadFailed is returned when pyproject.toml cannot be read.
	ErrProjectConfigReadFailed = zerr.New("failed to read project config")

	// ErrProjectConfigParseFailed is returned when pyproject.toml cannot be parsed.
	ErrProjectConfigParseFailed = zerr.New("failed to parse project config")

	// ErrSettingsParseFailed is returned when poetry.toml exists but cannot be read or parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse poetry settings")

	// ErrNoEnvironmentFile is returned when no environment.yaml or environment.yml
	// exists between a project directory and the filesystem root.
	ErrNoEnvironmentFile = zerr.New("no environment file in directory tree of project")

	// ErrEnvironmentFileReadFailed is returned when an environment file cannot be read.
	ErrEnvironmentFileReadFailed = zerr.New("failed to read environment file")

	// ErrMissingEnvName is returned when an environment file has no top-level name field.
	ErrMissingEnvName = zerr.New("environment file has no 'name' field")

	// ErrNoBaseEnvironment is returned when the conda environment to clone from does not exist.
	ErrNoBaseEnvironment = zerr.New("no base conda environment to clone")

	// ErrEnvironmentNotCreated is returned when an operation needs a materialized environment.
	ErrEnvironmentNotCreated = zerr.New("virtual environment not created")

	// ErrCondaCreateFailed is returned when creating an environment from a file exits non-zero.
	ErrCondaCreateFailed = zerr.New("conda environment creation from file failed")

	// ErrCondaRootUnknown is returned when the conda installation root cannot be determined.
	ErrCondaRootUnknown = zerr.New("could not determine conda root")

	// ErrPoetryEnvInfoParseFailed is returned when `poetry env info` output is not understood.
	ErrPoetryEnvInfoParseFailed = zerr.New("failed to parse poetry env info")

	// ErrCommandStartFailed is returned when a subprocess cannot be started at all.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrUnknownEnvAction is returned for an environment mutation action that is not supported.
	ErrUnknownEnvAction = zerr.New("unknown environment variable action")

	// ErrScopeOrder is returned when an environment scope is restored while a nested
	// scope is still active, or restored twice.
	ErrScopeOrder = zerr.New("environment scope restored out of order")

	// ErrEnvVarUpdateFailed is returned when the process environment cannot be modified.
	ErrEnvVarUpdateFailed = zerr.New("failed to update environment variable")
)
