// Package testutil provides common test builders and assertions for sandbox tests
package testutil

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	sberrors "github.com/reglet-dev/script-sandbox/domain/errors"
	"github.com/reglet-dev/script-sandbox/domain/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Decisions collects the seven answers of an evaluator for members of one type.
type Decisions struct {
	Method         bool
	Constructor    bool
	StaticMethod   bool
	FieldGet       bool
	FieldSet       bool
	StaticFieldGet bool
	StaticFieldSet bool
}

// Decide asks ev about a method, constructor and field declared on t.
func Decide(ev ports.Evaluator, t *entities.Type) Decisions {
	m := &entities.Method{Declaring: t, Name: "run"}
	c := &entities.Constructor{Declaring: t}
	f := &entities.Field{Declaring: t, Name: "value"}
	return Decisions{
		Method:         ev.PermitsMethod(m, nil, nil),
		Constructor:    ev.PermitsConstructor(c, nil),
		StaticMethod:   ev.PermitsStaticMethod(m, nil),
		FieldGet:       ev.PermitsFieldGet(f, nil),
		FieldSet:       ev.PermitsFieldSet(f, nil, nil),
		StaticFieldGet: ev.PermitsStaticFieldGet(f),
		StaticFieldSet: ev.PermitsStaticFieldSet(f, nil),
	}
}

// AllowAll is the Decisions value of an evaluator that permits everything.
var AllowAll = Decisions{true, true, true, true, true, true, true}

// AssertRejected asserts that err is a rejection of the given canonical signature.
func AssertRejected(t *testing.T, err error, signature string, msgAndArgs ...interface{}) {
	t.Helper()

	var se *sberrors.SecurityError
	require.True(t, errors.As(err, &se), "expected a rejection, got %v", err)
	assert.Equal(t, signature, se.Signature, msgAndArgs...)
}

// AssertJSONEqual compares two JSON strings for equality, ignoring formatting
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	var expectedJSON, actualJSON interface{}
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON), "expected JSON is invalid")
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON), "actual JSON is invalid")

	assert.Equal(t, expectedJSON, actualJSON, msgAndArgs...)
}
