package policy_test

import (
	"testing"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapResolver map[string]*entities.TypeInfo

func (r mapResolver) ResolveType(name string) (*entities.TypeInfo, bool) {
	info, ok := r[name]
	return info, ok
}

func testTypes() mapResolver {
	r := mapResolver{}
	for _, info := range []*entities.TypeInfo{
		{
			Name:    "java.lang.Object",
			Methods: []entities.MethodInfo{{Name: "toString"}, {Name: "equals", Params: []string{"java.lang.Object"}}},
			Constructors: [][]string{
				{},
			},
		},
		{
			Name:    "java.lang.CharSequence",
			Methods: []entities.MethodInfo{{Name: "length"}},
			Fields:  []entities.FieldInfo{{Name: "EMPTY", Static: true}},
		},
		{
			Name:       "java.lang.String",
			Super:      "java.lang.Object",
			Interfaces: []string{"java.lang.CharSequence"},
			Methods: []entities.MethodInfo{
				{Name: "length"},
				{Name: "toString"},
				{Name: "trim"},
				{Name: "valueOf", Params: []string{"int"}, Static: true},
			},
			Constructors: [][]string{{}, {"char[]"}},
			Fields:       []entities.FieldInfo{{Name: "hash"}},
		},
		{Name: "a.Loop", Super: "a.Loop2"},
		{Name: "a.Loop2", Super: "a.Loop", Fields: []entities.FieldInfo{{Name: "x"}}},
	} {
		r[info.Name] = info
	}
	return r
}

func mustParse(t *testing.T, line string) entities.Signature {
	t.Helper()
	sig, err := policy.ParseSignature(line)
	require.NoError(t, err)
	return sig
}

func TestExists(t *testing.T) {
	types := testTypes()

	tests := []struct {
		line string
		want bool
	}{
		{"method java.lang.String trim", true},
		{"method java.lang.Object toString", true},
		{"method java.lang.CharSequence length", true},
		// inherited or overridden instance methods belong to the declaring supertype
		{"method java.lang.String toString", false},
		{"method java.lang.String length", false},
		{"method java.lang.String equals java.lang.Object", false},
		{"method java.lang.String valueOf int", false},
		{"method java.lang.String nope", false},

		{"staticMethod java.lang.String valueOf int", true},
		{"staticMethod java.lang.String valueOf long", false},
		{"staticMethod java.lang.String trim", false},

		{"new java.lang.String", true},
		{"new java.lang.String char[]", true},
		{"new java.lang.String int", false},
		{"new java.lang.Object", true},

		{"field java.lang.String hash", true},
		{"staticField java.lang.String EMPTY", true},
		{"field java.lang.String nope", false},

		{"method com.example.Missing run", false},
		{"method java.lang.String *", false},
		{"field a.Loop x", true},
		{"field a.Loop y", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Exists(mustParse(t, tt.line), types))
		})
	}
}

func TestExists_NilResolver(t *testing.T) {
	assert.False(t, policy.Exists(mustParse(t, "method java.lang.String trim"), nil))
}
