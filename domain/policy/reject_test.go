package policy_test

import (
	"testing"

	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestReject(t *testing.T) {
	tests := []struct {
		name string
		err  error
		sig  string
	}{
		{"method", policy.RejectMethod(testutil.Method("java.io.File", "delete")), "method java.io.File delete"},
		{"static method", policy.RejectStaticMethod(testutil.StaticMethod("java.lang.System", "exit", "int")), "staticMethod java.lang.System exit int"},
		{"constructor", policy.RejectNew(testutil.Constructor("java.io.File", "java.lang.String")), "new java.io.File java.lang.String"},
		{"field", policy.RejectField(testutil.Field("java.io.File", "path")), "field java.io.File path"},
		{"static field", policy.RejectStaticField(testutil.StaticField("java.lang.System", "out")), "staticField java.lang.System out"},
		{"array params", policy.RejectStaticMethod(testutil.StaticMethod("java.util.Arrays", "sort", "int[]")), "staticMethod java.util.Arrays sort int[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertRejected(t, tt.err, tt.sig)
		})
	}
}

func TestRejectionMessage(t *testing.T) {
	assert.Equal(t,
		"Insecure call to 'staticMethod java.lang.System exit int' you can tweak the security sandbox to allow it. "+
			"Read more about this in the documentation.",
		policy.RejectStaticMethod(testutil.StaticMethod("java.lang.System", "exit", "int")).Error())

	assert.Equal(t,
		"Insecure call to 'new java.io.File java.lang.String (a, b)' you can tweak the security sandbox to allow it. "+
			"Read more about this in the documentation.",
		policy.RejectionMessage("new java.io.File java.lang.String", "a", "b"))
}
