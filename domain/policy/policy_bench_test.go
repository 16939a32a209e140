package policy_test

import (
	"fmt"
	"testing"

	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/internal/testutil"
)

func benchmarkStatic(b *testing.B, n int) *policy.Static {
	b.Helper()
	lines := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		lines = append(lines, fmt.Sprintf("method com.example.Type%d call%d java.lang.String", i, i))
	}
	lines = append(lines, "method java.lang.String length")
	s, err := policy.NewStatic(lines)
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkPermitsMethod_Cached(b *testing.B) {
	s := benchmarkStatic(b, 1000)
	m := testutil.Method("java.lang.String", "length")
	s.PermitsMethod(m, nil, nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.PermitsMethod(m, nil, nil)
	}
}

func BenchmarkPermitsMethod_Parallel(b *testing.B) {
	s := benchmarkStatic(b, 1000)
	m := testutil.Method("java.lang.String", "length")

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.PermitsMethod(m, nil, nil)
		}
	})
}

func BenchmarkParseSignature(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := policy.ParseSignature("staticMethod java.lang.String format java.lang.String java.lang.Object[]"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEnvGate(b *testing.B) {
	g, err := policy.NewEnvGate([]string{"APP_.*", "HOME"})
	if err != nil {
		b.Fatal(err)
	}
	getenv := testutil.StaticMethod("java.lang.System", "getenv", "java.lang.String")
	args := []any{"APP_DEBUG"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AllowsGetenv(getenv, args)
	}
}
