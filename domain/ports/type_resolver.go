package ports

import "github.com/reglet-dev/script-sandbox/domain/entities"

// TypeResolver looks up declared members of a type by canonical name.
// It serves the advisory existence check only.
type TypeResolver interface {
	ResolveType(name string) (*entities.TypeInfo, bool)
}
