package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

// TomlConfigParser implements ConfigParser for TOML. Unknown keys are errors.
type TomlConfigParser struct{}

// NewTomlConfigParser creates a new TomlConfigParser.
func NewTomlConfigParser() ports.ConfigParser {
	return &TomlConfigParser{}
}

// Parse decodes TOML bytes into a SandboxConfig.
func (p *TomlConfigParser) Parse(data []byte) (*entities.SandboxConfig, error) {
	var cfg entities.SandboxConfig

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sandbox config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("failed to parse sandbox config: unknown keys %s", strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// DecodeTOMLDocument decodes TOML into a generic document for schema checks.
func DecodeTOMLDocument(data []byte) (map[string]interface{}, error) {
	doc := map[string]interface{}{}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config document: %w", err)
	}
	return doc, nil
}

// IsTOML reports whether path names a TOML document.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// ForPath picks the parser for a configuration file by its extension. Anything
// that is not .toml is read as YAML, which also accepts JSON.
func ForPath(path string) ports.ConfigParser {
	if IsTOML(path) {
		return NewTomlConfigParser()
	}
	return NewYamlConfigParser()
}
