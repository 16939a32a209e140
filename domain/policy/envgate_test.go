package policy_test

import (
	"testing"

	sberrors "github.com/reglet-dev/script-sandbox/domain/errors"
	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvGate_FullMatch(t *testing.T) {
	g, err := policy.NewEnvGate([]string{"PATH_.*", "HOME"})
	require.NoError(t, err)

	getenv := testutil.StaticMethod("java.lang.System", "getenv", "java.lang.String")

	tests := []struct {
		name string
		args []any
		want bool
	}{
		{"prefix pattern", []any{"PATH_HOME"}, true},
		{"literal pattern", []any{"HOME"}, true},
		{"partial match is not enough", []any{"MY_HOME"}, false},
		{"prefix without separator", []any{"PATH"}, false},
		{"non-string argument", []any{42}, false},
		{"no arguments", nil, false},
		{"too many arguments", []any{"HOME", "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.AllowsGetenv(getenv, tt.args))
		})
	}
}

func TestEnvGate_OnlyGetenv(t *testing.T) {
	g, err := policy.NewEnvGate([]string{".*"})
	require.NoError(t, err)

	assert.False(t, g.AllowsGetenv(testutil.StaticMethod("java.lang.System", "getProperty", "java.lang.String"), []any{"HOME"}))
	assert.False(t, g.AllowsGetenv(testutil.StaticMethod("java.lang.System", "getenv"), []any{"HOME"}))
	assert.True(t, g.AllowsGetenv(testutil.StaticMethod("java.lang.System", "getenv", "java.lang.String"), []any{"ANYTHING"}))
	assert.False(t, g.AllowsGetenv(testutil.Method("java.lang.System", "getenv", "java.lang.String"), []any{"ANYTHING"}))
}

func TestEnvGate_BadPattern(t *testing.T) {
	g, err := policy.NewEnvGate([]string{"OK", "BAD("})
	assert.Nil(t, g)

	var ce *sberrors.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "env_allow", ce.Field)
	assert.Contains(t, err.Error(), "BAD(")
}

func TestEnvGate_Nil(t *testing.T) {
	var g *policy.EnvGate
	assert.False(t, g.AllowsName("HOME"))
	assert.False(t, g.AllowsGetenv(testutil.StaticMethod("java.lang.System", "getenv", "java.lang.String"), []any{"HOME"}))
	assert.Nil(t, g.Patterns())

	empty, err := policy.NewEnvGate(nil)
	require.NoError(t, err)
	assert.False(t, empty.AllowsName("HOME"))
}

func TestEnvGate_Patterns(t *testing.T) {
	in := []string{"A.*", "B"}
	g, err := policy.NewEnvGate(in)
	require.NoError(t, err)

	got := g.Patterns()
	assert.Equal(t, in, got)
	got[0] = "changed"
	assert.Equal(t, "A.*", g.Patterns()[0])
}
