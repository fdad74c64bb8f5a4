// Package envvar applies scoped, restorable mutations to the process environment.
package envvar

import (
	"errors"
	"os"
	"slices"
	"sync"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

// table is the variable store a Mutator edits.
type table interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
}

type osTable struct{}

func (osTable) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (osTable) Setenv(key, value string) error      { return os.Setenv(key, value) }
func (osTable) Unsetenv(key string) error           { return os.Unsetenv(key) }

// Mutator implements ports.EnvMutator on the process environment.
// Scopes nest: each one is pushed on a stack and must be restored in LIFO order.
type Mutator struct {
	mu    sync.Mutex
	table table
	stack []*Scope
}

// New creates a Mutator over the process environment.
func New() *Mutator {
	return &Mutator{table: osTable{}}
}

type savedVar struct {
	key     string
	value   string
	present bool
}

// Scope is one applied mutation awaiting restoration.
type Scope struct {
	m        *Mutator
	action   domain.EnvAction
	saved    []savedVar
	restored bool
}

// Push applies the mutation and returns the scope that undoes it.
func (m *Mutator) Push(action domain.EnvAction, vars map[string]string) (*Scope, error) {
	if action != domain.EnvReplace && action != domain.EnvInsert && action != domain.EnvAppend {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownEnvAction, "cannot apply environment scope"), "action", int(action))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	scope := &Scope{m: m, action: action, saved: make([]savedVar, 0, len(keys))}
	for _, key := range keys {
		old, present := m.table.LookupEnv(key)
		value, ok := combine(action, vars[key], old, present)
		if !ok {
			continue
		}

		scope.saved = append(scope.saved, savedVar{key: key, value: old, present: present})
		if err := m.table.Setenv(key, value); err != nil {
			// Undo whatever this scope already changed before reporting.
			_ = scope.undo()
			return nil, zerr.With(errors.Join(domain.ErrEnvVarUpdateFailed, err), "key", key)
		}
	}

	m.stack = append(m.stack, scope)
	return scope, nil
}

// combine computes the value to set. ok is false when the variable must be left untouched.
func combine(action domain.EnvAction, value, old string, present bool) (result string, ok bool) {
	switch action {
	case domain.EnvReplace:
		if !present {
			return "", false
		}
		return value, true
	case domain.EnvAppend:
		if !present || old == "" {
			return value, true
		}
		return value + string(os.PathListSeparator) + old, true
	default:
		return value, true
	}
}

// Restore puts back the values seen when the scope was pushed.
func (s *Scope) Restore() error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	n := len(s.m.stack)
	if s.restored || n == 0 || s.m.stack[n-1] != s {
		return zerr.With(zerr.Wrap(domain.ErrScopeOrder, "cannot restore environment scope"), "action", s.action.String())
	}
	s.m.stack = s.m.stack[:n-1]
	s.restored = true

	return s.undo()
}

func (s *Scope) undo() error {
	var firstErr error
	for i := len(s.saved) - 1; i >= 0; i-- {
		v := s.saved[i]
		var err error
		if v.present {
			err = s.m.table.Setenv(v.key, v.value)
		} else {
			err = s.m.table.Unsetenv(v.key)
		}
		if err != nil && firstErr == nil {
			firstErr = zerr.With(errors.Join(domain.ErrEnvVarUpdateFailed, err), "key", v.key)
		}
	}
	return firstErr
}

// Scoped applies the mutation for the duration of fn. The previous state is restored
// when fn returns or panics.
func (m *Mutator) Scoped(action domain.EnvAction, vars map[string]string, fn func() error) (err error) {
	scope, err := m.Push(action, vars)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := scope.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	return fn()
}

// Lookup reads a variable from the process environment.
func (m *Mutator) Lookup(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.table.LookupEnv(key)
}

// Depth returns the number of active scopes.
func (m *Mutator) Depth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stack)
}

var _ ports.EnvMutator = (*Mutator)(nil)
