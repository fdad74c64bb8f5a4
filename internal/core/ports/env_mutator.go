package ports

import "go.trai.ch/pinto/internal/core/domain"

// EnvMutator applies temporary, restorable changes to the process environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=env_mutator.go -destination=mocks/mock_env_mutator.go -package=mocks
type EnvMutator interface {
	// Scoped applies the mutation, runs fn, and restores the previous values
	// (including absence) however fn exits.
	Scoped(action domain.EnvAction, vars map[string]string, fn func() error) error

	// Lookup reads a variable from the process environment.
	Lookup(key string) (string, bool)
}
