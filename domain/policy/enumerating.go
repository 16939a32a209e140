package policy

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

var _ ports.Evaluator = (*Enumerating)(nil)

// Enumerating permits an operation when any of the signatures of its kind
// matches it. Signatures are scanned in insertion order and the first match
// wins. The signature lists must not change after construction.
type Enumerating struct {
	config     evaluatorConfig
	signatures map[entities.Kind][]entities.Signature
	cache      sync.Map // key: canonical operation text, value: bool
}

// NewEnumerating creates an evaluator over sigs, grouped by kind in the order given.
func NewEnumerating(sigs []entities.Signature, opts ...Option) *Enumerating {
	e := &Enumerating{
		config:     newEvaluatorConfig(opts),
		signatures: make(map[entities.Kind][]entities.Signature, len(entities.Kinds)),
	}
	for _, s := range sigs {
		k := s.Kind()
		e.signatures[k] = append(e.signatures[k], s)
	}
	return e
}

// Signatures returns the signatures of one kind in insertion order.
func (e *Enumerating) Signatures(kind entities.Kind) []entities.Signature {
	return slices.Clone(e.signatures[kind])
}

// Len returns the total number of signatures.
func (e *Enumerating) Len() int {
	n := 0
	for _, list := range e.signatures {
		n += len(list)
	}
	return n
}

// permits answers a canonical operation, memoizing the result. Racing
// computations of the same key always agree, so the first stored value wins.
func (e *Enumerating) permits(op entities.Operation) bool {
	key := op.String()
	if v, ok := e.cache.Load(key); ok {
		return v.(bool)
	}

	allowed := false
	for _, s := range e.signatures[op.Kind] {
		if s.Matches(op) {
			allowed = true
			break
		}
	}

	v, loaded := e.cache.LoadOrStore(key, allowed)
	if !loaded {
		e.config.logger.LogAttrs(context.Background(), slog.LevelDebug, "sandbox decision",
			slog.String("signature", key), slog.Bool("allowed", allowed))
	}
	return v.(bool)
}

func (e *Enumerating) PermitsMethod(method *entities.Method, _ any, _ []any) bool {
	return e.permits(entities.MethodOperation(method))
}

func (e *Enumerating) PermitsConstructor(constructor *entities.Constructor, _ []any) bool {
	return e.permits(entities.ConstructorOperation(constructor))
}

func (e *Enumerating) PermitsStaticMethod(method *entities.Method, _ []any) bool {
	return e.permits(entities.StaticMethodOperation(method))
}

func (e *Enumerating) PermitsFieldGet(field *entities.Field, _ any) bool {
	return e.permits(entities.FieldOperation(field))
}

// PermitsFieldSet follows PermitsFieldGet: a field signature grants both
// reading and writing.
func (e *Enumerating) PermitsFieldSet(field *entities.Field, receiver any, _ any) bool {
	return e.PermitsFieldGet(field, receiver)
}

func (e *Enumerating) PermitsStaticFieldGet(field *entities.Field) bool {
	return e.permits(entities.StaticFieldOperation(field))
}

// PermitsStaticFieldSet follows PermitsStaticFieldGet.
func (e *Enumerating) PermitsStaticFieldSet(field *entities.Field, _ any) bool {
	return e.PermitsStaticFieldGet(field)
}
