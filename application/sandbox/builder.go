package sandbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/script-sandbox/application/approval"
	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/errors"
	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

type builderConfig struct {
	resolver       ports.SourceResolver
	validator      ports.ConfigValidator
	approvalStores func(path string) ports.ApprovalStore
	loaders        []*entities.Loader
	evalOpts       []policy.Option
	guardOpts      []GuardOption
	logger         *slog.Logger
}

func defaultBuilderConfig() builderConfig {
	return builderConfig{logger: slog.Default()}
}

// BuilderOption configures a Builder.
type BuilderOption func(*builderConfig)

// WithResolver sets how definition references become sources. Required when
// the configuration names any definition.
func WithResolver(r ports.SourceResolver) BuilderOption {
	return func(c *builderConfig) {
		c.resolver = r
	}
}

// WithValidator validates configurations before anything is loaded.
func WithValidator(v ports.ConfigValidator) BuilderOption {
	return func(c *builderConfig) {
		c.validator = v
	}
}

// WithApprovalStores opens the approval store named by a configuration's
// approvals_path.
func WithApprovalStores(open func(path string) ports.ApprovalStore) BuilderOption {
	return func(c *builderConfig) {
		c.approvalStores = open
	}
}

// WithTrustedLoaders permits every member of types defined by these loaders,
// typically the loader of the scripts themselves.
func WithTrustedLoaders(loaders ...*entities.Loader) BuilderOption {
	return func(c *builderConfig) {
		c.loaders = append(c.loaders, loaders...)
	}
}

// WithEvaluatorOptions passes options to every evaluator built from definitions.
func WithEvaluatorOptions(opts ...policy.Option) BuilderOption {
	return func(c *builderConfig) {
		c.evalOpts = append(c.evalOpts, opts...)
	}
}

// WithGuardOptions passes options to the Guard.
func WithGuardOptions(opts ...GuardOption) BuilderOption {
	return func(c *builderConfig) {
		c.guardOpts = append(c.guardOpts, opts...)
	}
}

// WithBuilderLogger sets the logger used while building and, unless a guard
// option overrides it, for rejections.
func WithBuilderLogger(l *slog.Logger) BuilderOption {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Builder assembles Guards from SandboxConfigs.
type Builder struct {
	config builderConfig
}

// Sandbox is a built Guard together with the approval service feeding it,
// which is nil when the configuration names no approvals.
type Sandbox struct {
	*Guard
	Approvals *approval.Service
}

// Close flushes pending approvals to their store.
func (s *Sandbox) Close() error {
	if s.Approvals == nil {
		return nil
	}
	return s.Approvals.Close()
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...BuilderOption) *Builder {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder{config: cfg}
}

// Build loads every definition cfg names and composes
//
//	AllOf(AnyOf(allow, approved, trusted loaders...), deny lists...)
//
// Inside that conjunction a deny list decides field writes the way it decides
// the matching read.
// The first malformed definition line aborts the build.
func (b *Builder) Build(ctx context.Context, cfg *entities.SandboxConfig) (*Sandbox, error) {
	if cfg == nil {
		cfg = &entities.SandboxConfig{}
	}
	if err := b.validate(cfg); err != nil {
		return nil, err
	}

	env, err := policy.NewEnvGate(cfg.EnvAllow)
	if err != nil {
		return nil, err
	}

	allow, err := b.allowSide(ctx, cfg)
	if err != nil {
		return nil, err
	}
	anyOf := policy.AnyOf{allow}

	var approvals *approval.Service
	if cfg.ApprovalsPath != "" {
		if b.config.approvalStores == nil {
			return nil, &errors.ConfigError{Field: "approvals_path", Err: fmt.Errorf("no approval store available")}
		}
		approvals = approval.NewService(b.config.approvalStores(cfg.ApprovalsPath),
			approval.WithLogger(b.config.logger),
			approval.WithAutoSave(true),
			approval.WithEvaluatorOptions(b.config.evalOpts...))
		if err := approvals.Load(); err != nil {
			return nil, err
		}
		anyOf = append(anyOf, approvals)
	}
	for _, l := range b.config.loaders {
		anyOf = append(anyOf, policy.NewLoaderEvaluator(l))
	}

	allOf := policy.AllOf{anyOf}
	for i, ref := range cfg.Deny {
		srcs, err := b.resolve(ref, fmt.Sprintf("deny[%d]", i))
		if err != nil {
			return nil, err
		}
		d, err := policy.LoadDenyList(ctx, srcs, b.config.evalOpts...)
		if err != nil {
			return nil, err
		}
		allOf = append(allOf, denyRule{list: d})
	}

	guardOpts := []GuardOption{WithLogger(b.config.logger), WithEnvGate(env)}
	if approvals != nil {
		guardOpts = append(guardOpts, WithApprovalQueue(approvals))
	}
	guardOpts = append(guardOpts, b.config.guardOpts...)

	b.config.logger.Debug("sandbox built",
		slog.Int("allow_refs", len(cfg.Allow)),
		slog.Int("deny_refs", len(cfg.Deny)),
		slog.Int("env_patterns", len(cfg.EnvAllow)),
		slog.Bool("permit_all", cfg.PermitAll))

	return &Sandbox{Guard: NewGuard(allOf, guardOpts...), Approvals: approvals}, nil
}

func (b *Builder) validate(cfg *entities.SandboxConfig) error {
	if b.config.validator == nil {
		return nil
	}
	res, err := b.config.validator.Validate(cfg)
	if err != nil {
		return err
	}
	if !res.Valid {
		return &errors.ConfigError{Err: fmt.Errorf("invalid configuration:\n%s", res.String())}
	}
	return nil
}

func (b *Builder) allowSide(ctx context.Context, cfg *entities.SandboxConfig) (ports.Evaluator, error) {
	if cfg.PermitAll {
		return policy.PermitAll{}, nil
	}
	var srcs []ports.DefinitionSource
	for i, ref := range cfg.Allow {
		resolved, err := b.resolve(ref, fmt.Sprintf("allow[%d]", i))
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, resolved...)
	}
	allow, err := policy.LoadStaticAll(ctx, srcs, b.config.evalOpts...)
	if err != nil {
		return nil, err
	}
	return allow, nil
}

func (b *Builder) resolve(ref entities.DefinitionRef, field string) ([]ports.DefinitionSource, error) {
	if b.config.resolver == nil {
		return nil, &errors.ConfigError{Field: field, Err: fmt.Errorf("no definition resolver for %s", ref)}
	}
	srcs, err := b.config.resolver.Resolve(ref)
	if err != nil {
		return nil, &errors.ConfigError{Field: field, Err: err}
	}
	return srcs, nil
}
