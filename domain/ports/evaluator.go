package ports

import "github.com/reglet-dev/script-sandbox/domain/entities"

// Evaluator decides whether script code may perform a reflective operation.
//
// Note that a method handle should not be implementing or overriding a
// method in a supertype; in such a case the caller must pass that supertype
// method instead. Call site selection is the responsibility of the caller.
//
// Receivers, arguments and values are accepted for forward compatibility and
// must not influence the decision.
type Evaluator interface {
	PermitsMethod(method *entities.Method, receiver any, args []any) bool
	PermitsConstructor(constructor *entities.Constructor, args []any) bool
	PermitsStaticMethod(method *entities.Method, args []any) bool
	PermitsFieldGet(field *entities.Field, receiver any) bool
	PermitsFieldSet(field *entities.Field, receiver any, value any) bool
	PermitsStaticFieldGet(field *entities.Field) bool
	PermitsStaticFieldSet(field *entities.Field, value any) bool
}
