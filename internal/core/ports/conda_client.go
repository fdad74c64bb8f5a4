package ports

import "context"

// CondaClient is the narrow command interface to conda.
//
// Unless stated otherwise a non-zero conda exit is returned as *domain.ExitError.
//
//go:generate go run go.uber.org/mock/mockgen -source=conda_client.go -destination=mocks/mock_conda_client.go -package=mocks
type CondaClient interface {
	// EnvNames lists the names of all known environments.
	EnvNames(ctx context.Context) ([]string, error)

	// CreateFromFile creates an environment from an environment file. A non-zero exit
	// is returned as domain.ErrCondaCreateFailed with the command, exit code and stderr.
	CreateFromFile(ctx context.Context, file string) error

	// Clone creates the environment name as a copy of source.
	Clone(ctx context.Context, name, source string) error

	// ListPackages returns the package listing of the named environment.
	// Listings are cached per environment prefix.
	ListPackages(ctx context.Context, name string) (string, error)

	// Run executes argv inside the named environment without capturing output.
	Run(ctx context.Context, name string, argv []string) error

	// RootPrefix returns the conda installation root.
	RootPrefix(ctx context.Context) (string, error)

	// Invalidate drops any cached listing for the environment at prefix.
	Invalidate(prefix string)
}
