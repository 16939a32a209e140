package definition

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

// resolverConfig holds configuration for the Resolver.
type resolverConfig struct {
	baseDir string       // Directory relative paths are resolved against
	client  *http.Client // Client for url references
}

func defaultResolverConfig() resolverConfig {
	return resolverConfig{client: http.DefaultClient}
}

// ResolverOption configures a Resolver.
type ResolverOption func(*resolverConfig)

// WithBaseDir resolves relative path references against dir, typically the
// directory of the configuration file.
func WithBaseDir(dir string) ResolverOption {
	return func(c *resolverConfig) {
		c.baseDir = dir
	}
}

// WithHTTPClient sets the client used for url references.
func WithHTTPClient(client *http.Client) ResolverOption {
	return func(c *resolverConfig) {
		if client != nil {
			c.client = client
		}
	}
}

// Resolver turns DefinitionRefs into sources.
type Resolver struct {
	config resolverConfig
}

var _ ports.SourceResolver = (*Resolver)(nil)

// NewResolver creates a Resolver with the given options.
func NewResolver(opts ...ResolverOption) *Resolver {
	cfg := defaultResolverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Resolver{config: cfg}
}

// Resolve returns the sources ref addresses. Globs expand to every matching
// file in lexical order and must match at least one.
func (r *Resolver) Resolve(ref entities.DefinitionRef) ([]ports.DefinitionSource, error) {
	if n := ref.SetCount(); n != 1 {
		return nil, fmt.Errorf("definition reference must set exactly one of path, url, builtin, lines (got %d)", n)
	}

	switch {
	case ref.Path != "":
		return r.resolvePath(ref.Path)
	case ref.URL != "":
		return []ports.DefinitionSource{NewURLSource(ref.URL, r.config.client)}, nil
	case ref.Builtin != "":
		src, err := Builtin(ref.Builtin)
		if err != nil {
			return nil, err
		}
		return []ports.DefinitionSource{src}, nil
	default:
		return []ports.DefinitionSource{NewLinesSource("inline", ref.Lines)}, nil
	}
}

func (r *Resolver) resolvePath(p string) ([]ports.DefinitionSource, error) {
	if r.config.baseDir != "" && !filepath.IsAbs(p) {
		p = filepath.Join(r.config.baseDir, p)
	}
	if !isGlob(p) {
		return []ports.DefinitionSource{NewFileSource(p)}, nil
	}

	if !doublestar.ValidatePathPattern(p) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", p, doublestar.ErrBadPattern)
	}
	matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to expand %q: %w", p, err)
	}
	if len(matches) == 0 {
		return nil, errors.New("no definition files match " + p)
	}
	slices.Sort(matches)

	srcs := make([]ports.DefinitionSource, len(matches))
	for i, m := range matches {
		srcs[i] = NewFileSource(m)
	}
	return srcs, nil
}

func isGlob(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
