// Package sandbox is the interceptor-facing side of the script sandbox: a
// Guard answers every attempted operation with nil or a rejection.
package sandbox

import (
	"log/slog"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/errors"
	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

const denialReason = "not permitted by sandbox"

type guardConfig struct {
	env     *policy.EnvGate
	denials ports.DenialHandler
	queue   ports.ApprovalQueue
}

func defaultGuardConfig() guardConfig {
	return guardConfig{denials: &policy.SlogDenialHandler{}}
}

// GuardOption configures a Guard.
type GuardOption func(*guardConfig)

// WithEnvGate lets static environment reads through when gate allows the
// variable name.
func WithEnvGate(gate *policy.EnvGate) GuardOption {
	return func(c *guardConfig) {
		c.env = gate
	}
}

// WithDenialHandler sets the handler notified of every rejection.
// Default is a SlogDenialHandler on slog.Default().
func WithDenialHandler(h ports.DenialHandler) GuardOption {
	return func(c *guardConfig) {
		if h != nil {
			c.denials = h
		}
	}
}

// WithLogger reports rejections through l.
func WithLogger(l *slog.Logger) GuardOption {
	return func(c *guardConfig) {
		c.denials = &policy.SlogDenialHandler{Logger: l}
	}
}

// WithApprovalQueue offers the signature of every rejected operation to q,
// except permanently blacklisted ones.
func WithApprovalQueue(q ports.ApprovalQueue) GuardOption {
	return func(c *guardConfig) {
		c.queue = q
	}
}

// Guard checks operations against an Evaluator. It is safe for concurrent use
// when its evaluator is.
type Guard struct {
	config    guardConfig
	evaluator ports.Evaluator
}

// NewGuard creates a Guard deciding with ev.
func NewGuard(ev ports.Evaluator, opts ...GuardOption) *Guard {
	cfg := defaultGuardConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Guard{config: cfg, evaluator: ev}
}

// Evaluator returns the evaluator the guard decides with.
func (g *Guard) Evaluator() ports.Evaluator {
	return g.evaluator
}

// CheckMethod checks an instance method call.
func (g *Guard) CheckMethod(m *entities.Method, receiver any, args []any) error {
	if g.evaluator.PermitsMethod(m, receiver, args) {
		return nil
	}
	return g.deny(entities.MethodOperation(m), policy.IsPermanentlyBlacklistedMethod(m), policy.RejectMethod(m))
}

// CheckConstructor checks a constructor call.
func (g *Guard) CheckConstructor(c *entities.Constructor, args []any) error {
	if g.evaluator.PermitsConstructor(c, args) {
		return nil
	}
	return g.deny(entities.ConstructorOperation(c), policy.IsPermanentlyBlacklistedConstructor(c), policy.RejectNew(c))
}

// CheckStaticMethod checks a static method call. Environment reads allowed by
// the env gate pass even when the evaluator rejects them.
func (g *Guard) CheckStaticMethod(m *entities.Method, args []any) error {
	if g.evaluator.PermitsStaticMethod(m, args) || g.config.env.AllowsGetenv(m, args) {
		return nil
	}
	return g.deny(entities.StaticMethodOperation(m), policy.IsPermanentlyBlacklistedStaticMethod(m), policy.RejectStaticMethod(m))
}

// CheckFieldGet checks reading an instance field.
func (g *Guard) CheckFieldGet(f *entities.Field, receiver any) error {
	if g.evaluator.PermitsFieldGet(f, receiver) {
		return nil
	}
	return g.deny(entities.FieldOperation(f), false, policy.RejectField(f))
}

// CheckFieldSet checks writing an instance field.
func (g *Guard) CheckFieldSet(f *entities.Field, receiver any, value any) error {
	if g.evaluator.PermitsFieldSet(f, receiver, value) {
		return nil
	}
	return g.deny(entities.FieldOperation(f), false, policy.RejectField(f))
}

// CheckStaticFieldGet checks reading a static field.
func (g *Guard) CheckStaticFieldGet(f *entities.Field) error {
	if g.evaluator.PermitsStaticFieldGet(f) {
		return nil
	}
	return g.deny(entities.StaticFieldOperation(f), false, policy.RejectStaticField(f))
}

// CheckStaticFieldSet checks writing a static field.
func (g *Guard) CheckStaticFieldSet(f *entities.Field, value any) error {
	if g.evaluator.PermitsStaticFieldSet(f, value) {
		return nil
	}
	return g.deny(entities.StaticFieldOperation(f), false, policy.RejectStaticField(f))
}

func (g *Guard) deny(op entities.Operation, blacklisted bool, rejection *errors.SecurityError) error {
	sig := op.String()
	g.config.denials.OnDenial(op.Kind.String(), sig, denialReason)
	if g.config.queue != nil && !blacklisted {
		g.config.queue.Offer(sig)
	}
	return rejection
}
