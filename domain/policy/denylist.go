package policy

import (
	"context"
	"io"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

var _ ports.Evaluator = (*DenyList)(nil)

// DenyList works as a blacklist by negating the decisions of a Static built
// from the same definition grammar.
//
// Field and static field writes are not negated: they return the wrapped
// list's own decision, which follows its get decision. Existing deny-list
// files rely on this.
type DenyList struct {
	list *Static
}

// NewDenyList wraps list.
func NewDenyList(list *Static) *DenyList {
	return &DenyList{list: list}
}

// NewDenyListFromReader parses a deny-list definition.
func NewDenyListFromReader(r io.Reader, opts ...Option) (*DenyList, error) {
	s, err := NewStaticFromReader(r, opts...)
	if err != nil {
		return nil, err
	}
	return NewDenyList(s), nil
}

// LoadDenyList reads and parses a deny-list from sources, in order.
func LoadDenyList(ctx context.Context, srcs []ports.DefinitionSource, opts ...Option) (*DenyList, error) {
	s, err := LoadStaticAll(ctx, srcs, opts...)
	if err != nil {
		return nil, err
	}
	return NewDenyList(s), nil
}

// List returns the wrapped signature list.
func (d *DenyList) List() *Static {
	return d.list
}

func (d *DenyList) PermitsMethod(method *entities.Method, receiver any, args []any) bool {
	return !d.list.PermitsMethod(method, receiver, args)
}

func (d *DenyList) PermitsConstructor(constructor *entities.Constructor, args []any) bool {
	return !d.list.PermitsConstructor(constructor, args)
}

func (d *DenyList) PermitsStaticMethod(method *entities.Method, args []any) bool {
	return !d.list.PermitsStaticMethod(method, args)
}

func (d *DenyList) PermitsFieldGet(field *entities.Field, receiver any) bool {
	return !d.list.PermitsFieldGet(field, receiver)
}

func (d *DenyList) PermitsFieldSet(field *entities.Field, receiver any, value any) bool {
	return d.list.PermitsFieldSet(field, receiver, value)
}

func (d *DenyList) PermitsStaticFieldGet(field *entities.Field) bool {
	return !d.list.PermitsStaticFieldGet(field)
}

func (d *DenyList) PermitsStaticFieldSet(field *entities.Field, value any) bool {
	return d.list.PermitsStaticFieldSet(field, value)
}
