package entities

import "strings"

// Loader identifies the module-loading unit that defined a type.
// Two loaders are the same unit only if they are the same pointer; the name
// is informational and may repeat.
type Loader struct {
	name string
}

// NewLoader creates a new, distinct loading unit.
func NewLoader(name string) *Loader {
	return &Loader{name: name}
}

// Name returns the informational name of the loader.
func (l *Loader) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

func (l *Loader) String() string {
	return l.Name()
}

// Type is a resolved type as seen by the interceptor.
// Non-array types carry a fully-qualified dotted name; array types wrap
// their component type.
type Type struct {
	name   string
	elem   *Type
	loader *Loader
}

// NewType creates a non-array type defined by loader. A nil loader stands for
// the bootstrap unit.
func NewType(name string, loader *Loader) *Type {
	return &Type{name: name, loader: loader}
}

// ArrayOf creates the array type whose component type is elem.
func ArrayOf(elem *Type) *Type {
	return &Type{elem: elem}
}

// Elem returns the component type of an array type, or nil.
func (t *Type) Elem() *Type {
	return t.elem
}

// IsArray reports whether t is an array type.
func (t *Type) IsArray() bool {
	return t.elem != nil
}

// Loader returns the unit that defined the type. Array types report the
// loader of their innermost component type.
func (t *Type) Loader() *Loader {
	for t.elem != nil {
		t = t.elem
	}
	return t.loader
}

// Name returns the canonical name: the component name followed by one "[]"
// per array dimension.
func (t *Type) Name() string {
	if t.elem == nil {
		return t.name
	}
	return t.elem.Name() + "[]"
}

func (t *Type) String() string {
	return t.Name()
}

// TypeByName builds the type with the given canonical name, one array
// dimension per "[]" suffix, whose innermost component is defined by loader.
func TypeByName(name string, loader *Loader) *Type {
	dims := 0
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
		dims++
	}
	t := NewType(name, loader)
	for ; dims > 0; dims-- {
		t = ArrayOf(t)
	}
	return t
}

// TypeNameOf returns the canonical name of t, or "null" for a nil type.
func TypeNameOf(t *Type) string {
	if t == nil {
		return "null"
	}
	return t.Name()
}

// TypeNames returns the canonical names of types in order.
func TypeNames(types []*Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = TypeNameOf(t)
	}
	return names
}
