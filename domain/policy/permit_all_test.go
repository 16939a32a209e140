package policy_test

import (
	"testing"

	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPermitAll(t *testing.T) {
	for _, name := range []string{"java.lang.Runtime", "java.lang.System", "Script1[]"} {
		assert.Equal(t, testutil.AllowAll, testutil.Decide(policy.PermitAll{}, testutil.Type(name)), name)
	}
}
