package entities

import (
	"slices"
	"strings"
)

// Wildcard is the member-name token that matches any member name.
const Wildcard = "*"

// Signature describes one reflective operation shape. It is both a line of a
// definition file and a decision-cache key. Signatures are immutable.
type Signature struct {
	kind     Kind
	typeName string
	member   string
	params   []string
}

// NewSignature creates a signature of the given kind. member is ignored for
// KindNew and params are ignored for field kinds.
func NewSignature(kind Kind, typeName, member string, params []string) Signature {
	s := Signature{kind: kind, typeName: typeName}
	if kind.HasMember() {
		s.member = member
	}
	if kind.HasParams() && len(params) > 0 {
		s.params = slices.Clone(params)
	}
	return s
}

// NewMethodSignature creates an instance method signature.
func NewMethodSignature(receiverType, method string, params ...string) Signature {
	return NewSignature(KindMethod, receiverType, method, params)
}

// NewStaticMethodSignature creates a static method signature.
func NewStaticMethodSignature(receiverType, method string, params ...string) Signature {
	return NewSignature(KindStaticMethod, receiverType, method, params)
}

// NewConstructorSignature creates a constructor signature.
func NewConstructorSignature(typeName string, params ...string) Signature {
	return NewSignature(KindNew, typeName, "", params)
}

// NewFieldSignature creates an instance field signature.
func NewFieldSignature(typeName, field string) Signature {
	return NewSignature(KindField, typeName, field, nil)
}

// NewStaticFieldSignature creates a static field signature.
func NewStaticFieldSignature(typeName, field string) Signature {
	return NewSignature(KindStaticField, typeName, field, nil)
}

// MethodSignatureOf creates an instance method signature from resolved types.
func MethodSignatureOf(receiver *Type, method string, params ...*Type) Signature {
	return NewSignature(KindMethod, TypeNameOf(receiver), method, TypeNames(params))
}

// ConstructorSignatureOf creates a constructor signature from resolved types.
func ConstructorSignatureOf(t *Type, params ...*Type) Signature {
	return NewSignature(KindNew, TypeNameOf(t), "", TypeNames(params))
}

// FieldSignatureOf creates an instance field signature from a resolved type.
func FieldSignatureOf(t *Type, field string) Signature {
	return NewSignature(KindField, TypeNameOf(t), field, nil)
}

func (s Signature) Kind() Kind       { return s.kind }
func (s Signature) TypeName() string { return s.typeName }
func (s Signature) Member() string   { return s.member }

// Params returns a copy of the parameter type names.
func (s Signature) Params() []string {
	return slices.Clone(s.params)
}

// IsWildcard reports whether the member name is the wildcard token.
func (s Signature) IsWildcard() bool {
	return s.kind.HasMember() && s.member == Wildcard
}

// String returns the canonical definition-file form.
func (s Signature) String() string {
	return canonical(s.kind, s.typeName, s.member, s.params)
}

// Part returns the type and member portion of the canonical form, without
// the kind keyword.
func (s Signature) Part() string {
	return part(s.kind, s.typeName, s.member, s.params)
}

// Equal reports whether both signatures have the same kind and canonical text.
func (s Signature) Equal(other Signature) bool {
	return s.kind == other.kind && s.String() == other.String()
}

// Compare orders signatures by Part, then by full canonical text. The order
// is for presentation only.
func (s Signature) Compare(other Signature) int {
	if r := strings.Compare(s.Part(), other.Part()); r != 0 {
		return r
	}
	return strings.Compare(s.String(), other.String())
}

// Matches reports whether the signature covers op. Only the member name may
// be a wildcard; type names and parameter lists must match exactly.
func (s Signature) Matches(op Operation) bool {
	if s.kind != op.Kind || s.typeName != op.Type {
		return false
	}
	if s.kind.HasMember() && s.member != Wildcard && s.member != op.Member {
		return false
	}
	if s.kind.HasParams() && !slices.Equal(s.params, op.Params) {
		return false
	}
	return true
}

// SortSignatures sorts sigs in presentation order.
func SortSignatures(sigs []Signature) {
	slices.SortStableFunc(sigs, Signature.Compare)
}
