package ports

import (
	"context"
	"io"

	"github.com/reglet-dev/script-sandbox/domain/entities"
)

// DefinitionSource supplies the text of one definition file.
type DefinitionSource interface {
	// Name identifies the source in error messages.
	Name() string

	// Open returns the full definition text. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// SourceResolver turns a configured reference into concrete sources.
// A glob reference may resolve to several sources, in lexical order.
type SourceResolver interface {
	Resolve(ref entities.DefinitionRef) ([]DefinitionSource, error)
}
