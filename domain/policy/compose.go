package policy

import (
	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

var (
	_ ports.Evaluator = AnyOf(nil)
	_ ports.Evaluator = AllOf(nil)
)

// AnyOf permits an operation when at least one member permits it. Members are
// asked in order; an empty AnyOf permits nothing.
type AnyOf []ports.Evaluator

// AllOf permits an operation when every member permits it. An empty AllOf
// permits everything.
type AllOf []ports.Evaluator

func (a AnyOf) any(f func(ports.Evaluator) bool) bool {
	for _, e := range a {
		if f(e) {
			return true
		}
	}
	return false
}

func (a AnyOf) PermitsMethod(method *entities.Method, receiver any, args []any) bool {
	return a.any(func(e ports.Evaluator) bool { return e.PermitsMethod(method, receiver, args) })
}

func (a AnyOf) PermitsConstructor(constructor *entities.Constructor, args []any) bool {
	return a.any(func(e ports.Evaluator) bool { return e.PermitsConstructor(constructor, args) })
}

func (a AnyOf) PermitsStaticMethod(method *entities.Method, args []any) bool {
	return a.any(func(e ports.Evaluator) bool { return e.PermitsStaticMethod(method, args) })
}

func (a AnyOf) PermitsFieldGet(field *entities.Field, receiver any) bool {
	return a.any(func(e ports.Evaluator) bool { return e.PermitsFieldGet(field, receiver) })
}

func (a AnyOf) PermitsFieldSet(field *entities.Field, receiver any, value any) bool {
	return a.any(func(e ports.Evaluator) bool { return e.PermitsFieldSet(field, receiver, value) })
}

func (a AnyOf) PermitsStaticFieldGet(field *entities.Field) bool {
	return a.any(func(e ports.Evaluator) bool { return e.PermitsStaticFieldGet(field) })
}

func (a AnyOf) PermitsStaticFieldSet(field *entities.Field, value any) bool {
	return a.any(func(e ports.Evaluator) bool { return e.PermitsStaticFieldSet(field, value) })
}

func (a AllOf) all(f func(ports.Evaluator) bool) bool {
	for _, e := range a {
		if !f(e) {
			return false
		}
	}
	return true
}

func (a AllOf) PermitsMethod(method *entities.Method, receiver any, args []any) bool {
	return a.all(func(e ports.Evaluator) bool { return e.PermitsMethod(method, receiver, args) })
}

func (a AllOf) PermitsConstructor(constructor *entities.Constructor, args []any) bool {
	return a.all(func(e ports.Evaluator) bool { return e.PermitsConstructor(constructor, args) })
}

func (a AllOf) PermitsStaticMethod(method *entities.Method, args []any) bool {
	return a.all(func(e ports.Evaluator) bool { return e.PermitsStaticMethod(method, args) })
}

func (a AllOf) PermitsFieldGet(field *entities.Field, receiver any) bool {
	return a.all(func(e ports.Evaluator) bool { return e.PermitsFieldGet(field, receiver) })
}

func (a AllOf) PermitsFieldSet(field *entities.Field, receiver any, value any) bool {
	return a.all(func(e ports.Evaluator) bool { return e.PermitsFieldSet(field, receiver, value) })
}

func (a AllOf) PermitsStaticFieldGet(field *entities.Field) bool {
	return a.all(func(e ports.Evaluator) bool { return e.PermitsStaticFieldGet(field) })
}

func (a AllOf) PermitsStaticFieldSet(field *entities.Field, value any) bool {
	return a.all(func(e ports.Evaluator) bool { return e.PermitsStaticFieldSet(field, value) })
}
