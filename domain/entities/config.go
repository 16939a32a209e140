package entities

// SandboxConfig describes how a Guard is assembled: which allow-list and
// deny-list definitions to load, which environment variables scripts may read,
// and where approved signatures are persisted.
type SandboxConfig struct {
	// Allow lists definitions whose signatures are permitted. Lists are
	// unioned in order.
	Allow []DefinitionRef `json:"allow,omitempty" yaml:"allow,omitempty" toml:"allow,omitempty" validate:"dive" jsonschema:"description=Allow-list definition sources"`

	// Deny lists definitions whose signatures are forbidden. A call must pass
	// every deny list.
	Deny []DefinitionRef `json:"deny,omitempty" yaml:"deny,omitempty" toml:"deny,omitempty" validate:"dive" jsonschema:"description=Deny-list definition sources"`

	// EnvAllow holds regular expressions; a script may read an environment
	// variable whose name fully matches one of them.
	EnvAllow []string `json:"env_allow,omitempty" yaml:"env_allow,omitempty" toml:"env_allow,omitempty" validate:"dive,required" jsonschema:"description=Regular expressions of readable environment variable names"`

	// PermitAll replaces the allow side with an evaluator that permits everything.
	PermitAll bool `json:"permit_all,omitempty" yaml:"permit_all,omitempty" toml:"permit_all,omitempty"`

	// ApprovalsPath points at the approval store whose approved signatures
	// join the allow side.
	ApprovalsPath string `json:"approvals_path,omitempty" yaml:"approvals_path,omitempty" toml:"approvals_path,omitempty" jsonschema:"description=Path of the approvals file"`
}

// DefinitionRef addresses one definition source. Exactly one field is set.
type DefinitionRef struct {
	// Path is a file path or doublestar glob.
	Path string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`

	// URL is fetched over HTTP(S).
	URL string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty" validate:"omitempty,url"`

	// Builtin names a definition shipped with the module.
	Builtin string `json:"builtin,omitempty" yaml:"builtin,omitempty" toml:"builtin,omitempty" validate:"omitempty,oneof=default"`

	// Lines holds definition lines inline.
	Lines []string `json:"lines,omitempty" yaml:"lines,omitempty" toml:"lines,omitempty"`
}

// SetCount returns how many of the addressing fields are set.
func (r DefinitionRef) SetCount() int {
	n := 0
	if r.Path != "" {
		n++
	}
	if r.URL != "" {
		n++
	}
	if r.Builtin != "" {
		n++
	}
	if len(r.Lines) > 0 {
		n++
	}
	return n
}

// String describes the reference for messages.
func (r DefinitionRef) String() string {
	switch {
	case r.Path != "":
		return "path:" + r.Path
	case r.URL != "":
		return "url:" + r.URL
	case r.Builtin != "":
		return "builtin:" + r.Builtin
	case len(r.Lines) > 0:
		return "inline"
	default:
		return "empty"
	}
}
