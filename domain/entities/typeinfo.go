package entities

// TypeInfo describes the declared members of one type. It backs the
// advisory existence check and is never consulted when deciding a call.
type TypeInfo struct {
	Name         string       `json:"name" yaml:"name"`
	Super        string       `json:"super,omitempty" yaml:"super,omitempty"`
	Interfaces   []string     `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Methods      []MethodInfo `json:"methods,omitempty" yaml:"methods,omitempty"`
	Constructors [][]string   `json:"constructors,omitempty" yaml:"constructors,omitempty"`
	Fields       []FieldInfo  `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// MethodInfo is one declared method.
type MethodInfo struct {
	Name   string   `json:"name" yaml:"name"`
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
	Static bool     `json:"static,omitempty" yaml:"static,omitempty"`
}

// FieldInfo is one declared field.
type FieldInfo struct {
	Name   string `json:"name" yaml:"name"`
	Static bool   `json:"static,omitempty" yaml:"static,omitempty"`
}
