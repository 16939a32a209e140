package policy

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/errors"
)

// GetenvSignature is the one call the environment gate can allow: reading a
// single environment variable by name.
var GetenvSignature = entities.NewStaticMethodSignature("java.lang.System", "getenv", "java.lang.String")

// EnvGate allows reading environment variables whose names fully match one of
// its patterns. It only ever adds permission; callers consult it next to an
// Evaluator.
type EnvGate struct {
	raw      []string
	patterns []*regexp.Regexp
}

// NewEnvGate compiles patterns in order. Each pattern must match the whole
// variable name.
func NewEnvGate(patterns []string) (*EnvGate, error) {
	g := &EnvGate{raw: slices.Clone(patterns)}
	for _, p := range patterns {
		re, err := regexp.Compile(`^(?:` + p + `)$`)
		if err != nil {
			return nil, &errors.ConfigError{Field: "env_allow", Err: fmt.Errorf("pattern %q: %w", p, err)}
		}
		g.patterns = append(g.patterns, re)
	}
	return g, nil
}

// Patterns returns the configured patterns as given.
func (g *EnvGate) Patterns() []string {
	if g == nil {
		return nil
	}
	return slices.Clone(g.raw)
}

// AllowsGetenv reports whether method is the environment-read call and its
// single string argument is a permitted variable name.
func (g *EnvGate) AllowsGetenv(method *entities.Method, args []any) bool {
	if g == nil || method == nil || !method.Static || len(args) != 1 {
		return false
	}
	if !GetenvSignature.Matches(entities.StaticMethodOperation(method)) {
		return false
	}
	name, ok := args[0].(string)
	if !ok {
		return false
	}
	return g.AllowsName(name)
}

// AllowsName reports whether name fully matches one of the patterns.
func (g *EnvGate) AllowsName(name string) bool {
	if g == nil {
		return false
	}
	for _, re := range g.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
