package policy

import (
	"bytes"
	"context"
	"io"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/errors"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

var _ ports.Evaluator = (*Static)(nil)

// Static is an allow-list built once from definition text.
type Static struct {
	*Enumerating
	source string
}

// NewStatic builds an allow-list from definition lines. Blank lines and
// comments are skipped; any malformed line fails the whole construction.
func NewStatic(lines []string, opts ...Option) (*Static, error) {
	cfg := newEvaluatorConfig(opts)
	sigs, err := ParseLines(lines, cfg.source)
	if err != nil {
		return nil, err
	}
	return newStatic(sigs, cfg), nil
}

// NewStaticFromReader builds an allow-list from a line-oriented definition.
func NewStaticFromReader(r io.Reader, opts ...Option) (*Static, error) {
	cfg := newEvaluatorConfig(opts)
	sigs, err := ParseDefinition(r, cfg.source)
	if err != nil {
		return nil, err
	}
	return newStatic(sigs, cfg), nil
}

// NewStaticFromSignatures builds an allow-list from already parsed signatures.
func NewStaticFromSignatures(sigs []entities.Signature, opts ...Option) *Static {
	return newStatic(sigs, newEvaluatorConfig(opts))
}

// LoadStatic reads src fully, then parses it.
func LoadStatic(ctx context.Context, src ports.DefinitionSource, opts ...Option) (*Static, error) {
	return LoadStaticAll(ctx, []ports.DefinitionSource{src}, opts...)
}

// LoadStaticAll builds one allow-list from several sources, keeping their
// order. The first unreadable source or malformed line aborts.
func LoadStaticAll(ctx context.Context, srcs []ports.DefinitionSource, opts ...Option) (*Static, error) {
	cfg := newEvaluatorConfig(opts)
	var all []entities.Signature
	for _, src := range srcs {
		data, err := readSource(ctx, src)
		if err != nil {
			return nil, err
		}
		sigs, err := ParseDefinition(bytes.NewReader(data), src.Name())
		if err != nil {
			return nil, err
		}
		all = append(all, sigs...)
	}
	if len(srcs) == 1 && cfg.source == "" {
		cfg.source = srcs[0].Name()
	}
	return newStatic(all, cfg), nil
}

func readSource(ctx context.Context, src ports.DefinitionSource) ([]byte, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, &errors.SourceError{Source: src.Name(), Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &errors.SourceError{Source: src.Name(), Err: err}
	}
	return data, nil
}

func newStatic(sigs []entities.Signature, cfg evaluatorConfig) *Static {
	e := NewEnumerating(sigs, WithLogger(cfg.logger))
	return &Static{Enumerating: e, source: cfg.source}
}

// Source names where the definition came from, if known.
func (s *Static) Source() string {
	return s.source
}

// All returns every signature in presentation order.
func (s *Static) All() []entities.Signature {
	var all []entities.Signature
	for _, k := range entities.Kinds {
		all = append(all, s.Signatures(k)...)
	}
	entities.SortSignatures(all)
	return all
}
