package entities

import "strings"

// Operation is the canonical, handle-free form of a requested reflective
// operation: what kind of access, on which type, to which member, with which
// parameter types. Its String form is the decision-cache key.
type Operation struct {
	Kind   Kind
	Type   string
	Member string
	Params []string
}

// String returns the canonical text of the operation, in the same key space
// as Signature.String.
func (o Operation) String() string {
	return canonical(o.Kind, o.Type, o.Member, o.Params)
}

// MethodOperation canonicalizes an instance method call.
func MethodOperation(m *Method) Operation {
	return Operation{Kind: KindMethod, Type: TypeNameOf(m.Declaring), Member: m.Name, Params: TypeNames(m.Params)}
}

// StaticMethodOperation canonicalizes a static method call.
func StaticMethodOperation(m *Method) Operation {
	return Operation{Kind: KindStaticMethod, Type: TypeNameOf(m.Declaring), Member: m.Name, Params: TypeNames(m.Params)}
}

// ConstructorOperation canonicalizes a constructor call.
func ConstructorOperation(c *Constructor) Operation {
	return Operation{Kind: KindNew, Type: TypeNameOf(c.Declaring), Params: TypeNames(c.Params)}
}

// FieldOperation canonicalizes an instance field access.
func FieldOperation(f *Field) Operation {
	return Operation{Kind: KindField, Type: TypeNameOf(f.Declaring), Member: f.Name}
}

// StaticFieldOperation canonicalizes a static field access.
func StaticFieldOperation(f *Field) Operation {
	return Operation{Kind: KindStaticField, Type: TypeNameOf(f.Declaring), Member: f.Name}
}

// canonical renders `<kind> <part>`.
func canonical(kind Kind, typeName, member string, params []string) string {
	var b strings.Builder
	b.WriteString(kind.String())
	b.WriteByte(' ')
	writePart(&b, kind, typeName, member, params)
	return b.String()
}

// part renders the type and member portion without the kind keyword.
func part(kind Kind, typeName, member string, params []string) string {
	var b strings.Builder
	writePart(&b, kind, typeName, member, params)
	return b.String()
}

func writePart(b *strings.Builder, kind Kind, typeName, member string, params []string) {
	b.WriteString(typeName)
	if kind.HasMember() {
		b.WriteByte(' ')
		b.WriteString(member)
	}
	if kind.HasParams() {
		for _, p := range params {
			b.WriteByte(' ')
			b.WriteString(p)
		}
	}
}
