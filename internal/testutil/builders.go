package testutil

import (
	"github.com/reglet-dev/script-sandbox/domain/entities"
)

// Type resolves a canonical type name, including "[]" suffixes, to a type
// defined by the bootstrap loader.
func Type(name string) *entities.Type {
	return TypeIn(name, nil)
}

// TypeIn resolves a canonical type name to a type defined by loader.
func TypeIn(name string, loader *entities.Loader) *entities.Type {
	return entities.TypeByName(name, loader)
}

// Types resolves several names with Type.
func Types(names ...string) []*entities.Type {
	types := make([]*entities.Type, len(names))
	for i, n := range names {
		types[i] = Type(n)
	}
	return types
}

// Method builds an instance method handle.
func Method(typeName, name string, params ...string) *entities.Method {
	return &entities.Method{Declaring: Type(typeName), Name: name, Params: Types(params...)}
}

// StaticMethod builds a static method handle.
func StaticMethod(typeName, name string, params ...string) *entities.Method {
	m := Method(typeName, name, params...)
	m.Static = true
	return m
}

// Constructor builds a constructor handle.
func Constructor(typeName string, params ...string) *entities.Constructor {
	return &entities.Constructor{Declaring: Type(typeName), Params: Types(params...)}
}

// Field builds an instance field handle.
func Field(typeName, name string) *entities.Field {
	return &entities.Field{Declaring: Type(typeName), Name: name}
}

// StaticField builds a static field handle.
func StaticField(typeName, name string) *entities.Field {
	return &entities.Field{Declaring: Type(typeName), Name: name, Static: true}
}
