package sandbox

import (
	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

// denyRule adapts a DenyList for use inside the Guard's AllOf. A DenyList
// answers field writes with the wrapped list's unnegated decision, which in a
// conjunction would reject every write it does not name and allow the ones it
// does. Writes here follow the negated read decision instead, so a listed
// field is neither readable nor writable.
type denyRule struct {
	list *policy.DenyList
}

var _ ports.Evaluator = denyRule{}

func (d denyRule) PermitsMethod(method *entities.Method, receiver any, args []any) bool {
	return d.list.PermitsMethod(method, receiver, args)
}

func (d denyRule) PermitsConstructor(constructor *entities.Constructor, args []any) bool {
	return d.list.PermitsConstructor(constructor, args)
}

func (d denyRule) PermitsStaticMethod(method *entities.Method, args []any) bool {
	return d.list.PermitsStaticMethod(method, args)
}

func (d denyRule) PermitsFieldGet(field *entities.Field, receiver any) bool {
	return d.list.PermitsFieldGet(field, receiver)
}

func (d denyRule) PermitsFieldSet(field *entities.Field, receiver any, _ any) bool {
	return d.list.PermitsFieldGet(field, receiver)
}

func (d denyRule) PermitsStaticFieldGet(field *entities.Field) bool {
	return d.list.PermitsStaticFieldGet(field)
}

func (d denyRule) PermitsStaticFieldSet(field *entities.Field, _ any) bool {
	return d.list.PermitsStaticFieldGet(field)
}
