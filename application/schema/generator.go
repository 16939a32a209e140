// Package schema provides JSON schema generation for sandbox configuration.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/reglet-dev/script-sandbox/domain/entities"
)

// ConfigSchemaURL is the resource name the configuration schema is compiled under.
const ConfigSchemaURL = "sandbox-config.json"

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12).
func GenerateSchema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
		Anonymous:      true, // No package-derived $id
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// ConfigSchema returns the schema of a SandboxConfig document.
func ConfigSchema() ([]byte, error) {
	return GenerateSchema(&entities.SandboxConfig{})
}
