package policy

import (
	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

var _ ports.Evaluator = PermitAll{}

// PermitAll allows every operation.
type PermitAll struct{}

func (PermitAll) PermitsMethod(*entities.Method, any, []any) bool      { return true }
func (PermitAll) PermitsConstructor(*entities.Constructor, []any) bool { return true }
func (PermitAll) PermitsStaticMethod(*entities.Method, []any) bool     { return true }
func (PermitAll) PermitsFieldGet(*entities.Field, any) bool            { return true }
func (PermitAll) PermitsFieldSet(*entities.Field, any, any) bool       { return true }
func (PermitAll) PermitsStaticFieldGet(*entities.Field) bool           { return true }
func (PermitAll) PermitsStaticFieldSet(*entities.Field, any) bool      { return true }
