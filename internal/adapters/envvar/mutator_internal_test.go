package envvar //nolint:testpackage // Allow testing internals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinto/internal/core/domain"
)

type mapTable struct {
	vars    map[string]string
	failKey string
}

func (t *mapTable) LookupEnv(key string) (string, bool) {
	v, ok := t.vars[key]
	return v, ok
}

func (t *mapTable) Setenv(key, value string) error {
	if key == t.failKey {
		return errors.New("setenv refused")
	}
	t.vars[key] = value
	return nil
}

func (t *mapTable) Unsetenv(key string) error {
	delete(t.vars, key)
	return nil
}

func TestPush_RollsBackPartialMutation(t *testing.T) {
	tbl := &mapTable{vars: map[string]string{"A": "1"}, failKey: "B"}
	m := &Mutator{table: tbl}

	_, err := m.Push(domain.EnvInsert, map[string]string{"A": "2", "B": "3"})
	require.ErrorIs(t, err, domain.ErrEnvVarUpdateFailed)

	assert.Equal(t, map[string]string{"A": "1"}, tbl.vars)
	assert.Equal(t, 0, m.Depth())
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name    string
		action  domain.EnvAction
		old     string
		present bool
		want    string
		wantOK  bool
	}{
		{"replace present", domain.EnvReplace, "x", true, "new", true},
		{"replace absent", domain.EnvReplace, "", false, "", false},
		{"insert absent", domain.EnvInsert, "", false, "new", true},
		{"append empty", domain.EnvAppend, "", true, "new", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := combine(tt.action, "new", tt.old, tt.present)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
