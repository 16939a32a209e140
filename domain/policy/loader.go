package policy

import (
	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

var _ ports.Evaluator = (*LoaderEvaluator)(nil)

// LoaderEvaluator allows everything declared by types of one loading unit,
// compared by identity.
type LoaderEvaluator struct {
	loader *entities.Loader
}

// NewLoaderEvaluator trusts types defined by loader.
func NewLoaderEvaluator(loader *entities.Loader) *LoaderEvaluator {
	return &LoaderEvaluator{loader: loader}
}

func (e *LoaderEvaluator) permits(declaring *entities.Type) bool {
	return declaring != nil && declaring.Loader() == e.loader
}

func (e *LoaderEvaluator) PermitsMethod(method *entities.Method, _ any, _ []any) bool {
	return e.permits(method.Declaring)
}

func (e *LoaderEvaluator) PermitsConstructor(constructor *entities.Constructor, _ []any) bool {
	return e.permits(constructor.Declaring)
}

func (e *LoaderEvaluator) PermitsStaticMethod(method *entities.Method, _ []any) bool {
	return e.permits(method.Declaring)
}

func (e *LoaderEvaluator) PermitsFieldGet(field *entities.Field, _ any) bool {
	return e.permits(field.Declaring)
}

func (e *LoaderEvaluator) PermitsFieldSet(field *entities.Field, _ any, _ any) bool {
	return e.permits(field.Declaring)
}

func (e *LoaderEvaluator) PermitsStaticFieldGet(field *entities.Field) bool {
	return e.permits(field.Declaring)
}

func (e *LoaderEvaluator) PermitsStaticFieldSet(field *entities.Field, _ any) bool {
	return e.permits(field.Declaring)
}
