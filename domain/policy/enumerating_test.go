package policy

import (
	"sync"
	"testing"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheSize(e *Enumerating) int {
	n := 0
	e.cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func mustParse(t *testing.T, lines ...string) []entities.Signature {
	t.Helper()
	sigs, err := ParseLines(lines, "")
	require.NoError(t, err)
	return sigs
}

func TestEnumerating_WildcardMethod(t *testing.T) {
	e := NewEnumerating(mustParse(t, "method java.lang.String * "))

	assert.True(t, e.PermitsMethod(testutil.Method("java.lang.String", "length"), "abc", nil))
	assert.True(t, e.PermitsMethod(testutil.Method("java.lang.String", "trim"), "abc", nil))
	assert.False(t, e.PermitsMethod(testutil.Method("java.lang.String", "length", "int"), "abc", []any{1}))
	assert.False(t, e.PermitsMethod(testutil.Method("java.lang.StringBuilder", "length"), nil, nil))
	assert.False(t, e.PermitsStaticMethod(testutil.StaticMethod("java.lang.String", "length"), nil))
}

func TestEnumerating_CacheIdempotence(t *testing.T) {
	e := NewEnumerating(mustParse(t, "method java.lang.String length"))
	m := testutil.Method("java.lang.String", "length")

	for i := 0; i < 10; i++ {
		assert.True(t, e.PermitsMethod(m, "abc", nil))
	}
	assert.Equal(t, 1, cacheSize(e))

	v, ok := e.cache.Load("method java.lang.String length")
	require.True(t, ok)
	assert.Equal(t, true, v)

	denied := testutil.Method("java.lang.String", "trim")
	for i := 0; i < 10; i++ {
		assert.False(t, e.PermitsMethod(denied, "abc", nil))
	}
	assert.Equal(t, 2, cacheSize(e))
}

func TestEnumerating_ArgumentsDoNotAffectKey(t *testing.T) {
	e := NewEnumerating(mustParse(t, "method java.util.List get int"))
	m := testutil.Method("java.util.List", "get", "int")

	assert.True(t, e.PermitsMethod(m, []int{1}, []any{0}))
	assert.True(t, e.PermitsMethod(m, nil, []any{42}))
	assert.Equal(t, 1, cacheSize(e))
}

func TestEnumerating_FieldSetFollowsGet(t *testing.T) {
	e := NewEnumerating(mustParse(t,
		"field java.io.File path",
		"staticField java.io.File separator",
	))

	assert.True(t, e.PermitsFieldGet(testutil.Field("java.io.File", "path"), nil))
	assert.True(t, e.PermitsStaticFieldGet(testutil.StaticField("java.io.File", "separator")))
	assert.False(t, e.PermitsStaticFieldGet(testutil.StaticField("java.io.File", "path")))
	before := cacheSize(e)
	require.Equal(t, 3, before)

	assert.True(t, e.PermitsFieldSet(testutil.Field("java.io.File", "path"), nil, "/tmp"))
	assert.True(t, e.PermitsStaticFieldSet(testutil.StaticField("java.io.File", "separator"), "/"))
	assert.False(t, e.PermitsStaticFieldSet(testutil.StaticField("java.io.File", "path"), "x"))

	// get and set share one key
	assert.Equal(t, before, cacheSize(e))

	assert.False(t, e.PermitsFieldSet(testutil.Field("java.io.File", "name"), nil, "x"))
	assert.Equal(t, before+1, cacheSize(e))
}

func TestEnumerating_KindsAreSeparate(t *testing.T) {
	e := NewEnumerating(mustParse(t,
		"staticMethod java.lang.Math abs int",
		"new java.util.ArrayList",
	))

	assert.True(t, e.PermitsStaticMethod(testutil.StaticMethod("java.lang.Math", "abs", "int"), []any{-1}))
	assert.False(t, e.PermitsMethod(testutil.Method("java.lang.Math", "abs", "int"), nil, nil))
	assert.True(t, e.PermitsConstructor(testutil.Constructor("java.util.ArrayList"), nil))
	assert.False(t, e.PermitsConstructor(testutil.Constructor("java.util.ArrayList", "int"), []any{3}))
}

func TestEnumerating_InsertionOrder(t *testing.T) {
	sigs := mustParse(t,
		"method a.B *",
		"method a.B c",
		"field a.B d",
	)
	e := NewEnumerating(sigs)

	got := e.Signatures(entities.KindMethod)
	require.Len(t, got, 2)
	assert.Equal(t, "method a.B *", got[0].String())
	assert.Equal(t, "method a.B c", got[1].String())
	assert.Equal(t, 3, e.Len())
}

func TestEnumerating_Concurrent(t *testing.T) {
	e := NewEnumerating(mustParse(t, "method java.lang.String length", "field java.io.File path"))

	var wg sync.WaitGroup
	results := make([]bool, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			allowed := e.PermitsMethod(testutil.Method("java.lang.String", "length"), nil, nil)
			allowed = allowed && e.PermitsFieldGet(testutil.Field("java.io.File", "path"), nil)
			allowed = allowed && !e.PermitsMethod(testutil.Method("java.lang.String", "trim"), nil, nil)
			results[i] = allowed
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.True(t, r)
	}
	assert.Equal(t, 3, cacheSize(e))
}
