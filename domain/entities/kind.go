package entities

// Kind identifies one of the five operation shapes a Signature can describe.
type Kind int

const (
	KindMethod Kind = iota
	KindStaticMethod
	KindNew
	KindField
	KindStaticField
)

// Kinds lists every kind in definition-file order.
var Kinds = []Kind{KindMethod, KindStaticMethod, KindNew, KindField, KindStaticField}

var kindKeywords = [...]string{
	KindMethod:       "method",
	KindStaticMethod: "staticMethod",
	KindNew:          "new",
	KindField:        "field",
	KindStaticField:  "staticField",
}

// String returns the definition-file keyword of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindKeywords) {
		return "unknown"
	}
	return kindKeywords[k]
}

// ParseKind maps a definition-file keyword to its Kind.
func ParseKind(keyword string) (Kind, bool) {
	for k, kw := range kindKeywords {
		if kw == keyword {
			return Kind(k), true
		}
	}
	return 0, false
}

// HasMember reports whether signatures of this kind carry a member name token.
func (k Kind) HasMember() bool {
	return k != KindNew
}

// HasParams reports whether signatures of this kind carry parameter types.
func (k Kind) HasParams() bool {
	return k == KindMethod || k == KindStaticMethod || k == KindNew
}

// IsStatic reports whether the kind addresses a static member.
func (k Kind) IsStatic() bool {
	return k == KindStaticMethod || k == KindStaticField
}
