// Package validation checks sandbox configurations before a Guard is built.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/reglet-dev/script-sandbox/application/schema"
	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// validate is a package-level singleton; building a validator is expensive.
var validate = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		ref := sl.Current().Interface().(entities.DefinitionRef)
		if ref.SetCount() != 1 {
			sl.ReportError(ref, "", "", "exactly_one", "")
		}
	}, entities.DefinitionRef{})
	return v
}

// ConfigValidator checks SandboxConfigs against the configuration schema,
// the struct validation tags, and the env_allow patterns.
type ConfigValidator struct {
	schema *jsonschema.Schema
}

var _ ports.ConfigValidator = (*ConfigValidator)(nil)

// NewConfigValidator compiles the configuration schema.
func NewConfigValidator() (*ConfigValidator, error) {
	data, err := schema.ConfigSchema()
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schema.ConfigSchemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add config schema: %w", err)
	}
	sch, err := compiler.Compile(schema.ConfigSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid config schema: %w", err)
	}
	return &ConfigValidator{schema: sch}, nil
}

// Validate reports every problem found in cfg.
func (v *ConfigValidator) Validate(cfg *entities.SandboxConfig) (*entities.ValidationResult, error) {
	result := &entities.ValidationResult{Valid: true}
	if cfg == nil {
		return result, nil
	}

	b, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare validation object: %w", err)
	}
	if err := v.validateJSON(b, result); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		for _, fe := range fieldErrs {
			result.Add(fieldPath(fe.Namespace()), describe(fe))
		}
	}

	for i, p := range cfg.EnvAllow {
		if _, err := regexp.Compile(`^(?:` + p + `)$`); err != nil {
			result.Add(fmt.Sprintf("env_allow[%d]", i), err.Error())
		}
	}
	return result, nil
}

// ValidateDocument checks a raw YAML (or JSON) configuration document against
// the schema, which catches unknown keys and wrong types with their paths.
func (v *ConfigValidator) ValidateDocument(data []byte) (*entities.ValidationResult, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config document: %w", err)
	}
	return v.ValidateObject(doc)
}

// ValidateObject checks an already decoded configuration document against the
// schema. A nil document is an empty configuration.
func (v *ConfigValidator) ValidateObject(doc interface{}) (*entities.ValidationResult, error) {
	if doc == nil {
		doc = map[string]interface{}{}
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare validation object: %w", err)
	}

	result := &entities.ValidationResult{Valid: true}
	if err := v.validateJSON(b, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (v *ConfigValidator) validateJSON(b []byte, result *entities.ValidationResult) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var obj interface{}
	if err := dec.Decode(&obj); err != nil {
		return fmt.Errorf("failed to prepare validation object: %w", err)
	}

	if err := v.schema.Validate(obj); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		for _, leaf := range leaves(ve) {
			field := strings.TrimPrefix(leaf.InstanceLocation, "/")
			if field == "" {
				field = "$"
			}
			result.Add(strings.ReplaceAll(field, "/", "."), leaf.Message)
		}
	}
	return nil
}

// leaves returns the innermost causes, which carry the useful messages.
func leaves(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var out []*jsonschema.ValidationError
	for _, c := range ve.Causes {
		out = append(out, leaves(c)...)
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace. Struct
// level errors end in a dot.
func fieldPath(ns string) string {
	ns = strings.TrimSuffix(ns, ".")
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "exactly_one":
		return "must set exactly one of path, url, builtin, lines"
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	case "oneof":
		return fmt.Sprintf("%q is not one of [%s]", fe.Value(), fe.Param())
	case "required":
		return "must not be empty"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
