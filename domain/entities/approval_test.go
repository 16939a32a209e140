package entities_test

import (
	"testing"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestApprovalSet_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		set  *entities.ApprovalSet
		want bool
	}{
		{"Nil set", nil, true},
		{"Empty set", &entities.ApprovalSet{}, true},
		{"Approved only", &entities.ApprovalSet{Approved: []string{"method a.B c"}}, false},
		{"Pending only", &entities.ApprovalSet{Pending: []string{"method a.B c"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.IsEmpty())
		})
	}
}

func TestApprovalSet_Merge(t *testing.T) {
	a := &entities.ApprovalSet{
		Approved: []string{"method a.B c"},
		Pending:  []string{"new a.B"},
	}
	a.Merge(&entities.ApprovalSet{
		Approved: []string{"method a.B c", "field a.B d"},
		Pending:  []string{"new a.B", "method a.B c", "staticField a.B E"},
	})

	assert.Equal(t, []string{"method a.B c", "field a.B d"}, a.Approved)
	assert.Equal(t, []string{"new a.B", "staticField a.B E"}, a.Pending)
	assert.True(t, a.IsApproved("field a.B d"))
	assert.True(t, a.IsPending("staticField a.B E"))

	a.Merge(nil)
	assert.Len(t, a.Approved, 2)
}

func TestDefinitionRef_SetCount(t *testing.T) {
	assert.Equal(t, 0, entities.DefinitionRef{}.SetCount())
	assert.Equal(t, 1, entities.DefinitionRef{Path: "a"}.SetCount())
	assert.Equal(t, 2, entities.DefinitionRef{Path: "a", Lines: []string{"new a.B"}}.SetCount())
	assert.Equal(t, "builtin:default", entities.DefinitionRef{Builtin: "default"}.String())
}
