package ports

import "github.com/reglet-dev/script-sandbox/domain/entities"

// ConfigValidator validates a sandbox configuration.
type ConfigValidator interface {
	// Validate reports every problem found; err is reserved for failures of
	// the validator itself.
	Validate(cfg *entities.SandboxConfig) (*entities.ValidationResult, error)
}
