// Package typeregistry holds a catalog of known types and their declared
// members, used to check whether definition lines name real members.
package typeregistry

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
	"gopkg.in/yaml.v3"
)

// registryConfig holds configuration for the Registry.
type registryConfig struct {
	strictMode bool // Fail on duplicate registrations
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		strictMode: true,
	}
}

// RegistryOption configures a Registry instance.
type RegistryOption func(*registryConfig)

// WithStrictMode enables/disables strict mode for duplicate registrations.
// Default is true (fail on duplicates). Disabled, a later registration
// replaces the earlier one.
func WithStrictMode(enabled bool) RegistryOption {
	return func(c *registryConfig) {
		c.strictMode = enabled
	}
}

// Registry is an in-memory TypeResolver.
type Registry struct {
	config registryConfig
	types  sync.Map // map[string]*entities.TypeInfo
}

var _ ports.TypeResolver = (*Registry)(nil)

// Catalog is the YAML document LoadCatalog reads.
type Catalog struct {
	Types []entities.TypeInfo `yaml:"types"`
}

// NewRegistry creates a new Registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{config: cfg}
}

// Register adds a type description.
func (r *Registry) Register(info entities.TypeInfo) error {
	if info.Name == "" {
		return fmt.Errorf("type without a name")
	}
	stored := info
	if r.config.strictMode {
		if _, loaded := r.types.LoadOrStore(info.Name, &stored); loaded {
			return fmt.Errorf("type %q already registered", info.Name)
		}
		return nil
	}
	r.types.Store(info.Name, &stored)
	return nil
}

// ResolveType returns the description registered under name.
func (r *Registry) ResolveType(name string) (*entities.TypeInfo, bool) {
	v, ok := r.types.Load(name)
	if !ok {
		return nil, false
	}
	return v.(*entities.TypeInfo), true
}

// List returns all registered type names, sorted.
func (r *Registry) List() []string {
	var names []string
	r.types.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	slices.Sort(names)
	return names
}

// LoadCatalog registers every type of a YAML catalog. It stops at the first
// registration error.
func (r *Registry) LoadCatalog(rd io.Reader) error {
	var c Catalog
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return fmt.Errorf("failed to parse type catalog: %w", err)
	}
	for _, info := range c.Types {
		if err := r.Register(info); err != nil {
			return err
		}
	}
	return nil
}

// LoadCatalogFile reads a catalog from path.
func (r *Registry) LoadCatalogFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open type catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return r.LoadCatalog(f)
}
