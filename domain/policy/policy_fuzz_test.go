package policy_test

import (
	"strings"
	"testing"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/internal/testutil"
)

func FuzzParseSignature(f *testing.F) {
	f.Add("method java.lang.String length")
	f.Add("staticMethod java.lang.Math max int int")
	f.Add("new java.util.ArrayList")
	f.Add("field java.awt.Point x")
	f.Add("staticField java.lang.System  out ")
	f.Add("methd a b")
	f.Add("")

	f.Fuzz(func(t *testing.T, line string) {
		sig, err := policy.ParseSignature(line)
		if err != nil {
			return
		}
		again, err := policy.ParseSignature(sig.String())
		if err != nil {
			t.Fatalf("canonical form %q does not parse: %v", sig.String(), err)
		}
		if !again.Equal(sig) {
			t.Fatalf("round trip changed %q into %q", sig.String(), again.String())
		}
	})
}

func FuzzPermitsMethod(f *testing.F) {
	s, err := policy.NewStatic([]string{
		"method java.lang.String *",
		"method java.util.List get int",
	})
	if err != nil {
		f.Fatal(err)
	}
	f.Add("java.lang.String", "length", "")
	f.Add("java.util.List", "get", "int")
	f.Add("java.io.File", "delete", "")

	f.Fuzz(func(t *testing.T, typeName, name, param string) {
		// Definition tokens never contain whitespace.
		if !isToken(typeName) || !isToken(name) || (param != "" && !isToken(param)) {
			t.Skip()
		}
		var params []string
		if param != "" {
			params = []string{param}
		}
		m := testutil.Method(typeName, name, params...)
		first := s.PermitsMethod(m, nil, nil)
		if first != s.PermitsMethod(m, nil, nil) {
			t.Fatalf("decision for %s changed between calls", entities.MethodOperation(m))
		}
		if typeName == "java.lang.String" && !first {
			t.Fatalf("wildcard did not cover %s", entities.MethodOperation(m))
		}
	})
}

func isToken(s string) bool {
	f := strings.Fields(s)
	return len(f) == 1 && f[0] == s
}
