package entities

// Method is a resolved method handle. Callers must pass the declaring member
// they selected; overrides are not walked back to their supertype.
type Method struct {
	Declaring *Type
	Name      string
	Params    []*Type
	Static    bool
}

// Constructor is a resolved constructor handle.
type Constructor struct {
	Declaring *Type
	Params    []*Type
}

// Field is a resolved field handle.
type Field struct {
	Declaring *Type
	Name      string
	Static    bool
}
