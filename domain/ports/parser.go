package ports

import "github.com/reglet-dev/script-sandbox/domain/entities"

// ConfigParser parses raw configuration bytes into a SandboxConfig.
type ConfigParser interface {
	Parse(data []byte) (*entities.SandboxConfig, error)
}
