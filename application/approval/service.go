// Package approval keeps track of signatures awaiting an administrator's
// decision and exposes the approved ones as an allow-list.
package approval

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

var (
	_ ports.ApprovalQueue = (*Service)(nil)
	_ ports.Evaluator     = (*Service)(nil)
)

type serviceConfig struct {
	logger   *slog.Logger
	autoSave bool
	evalOpts []policy.Option
}

func defaultServiceConfig() serviceConfig {
	return serviceConfig{logger: slog.Default()}
}

// Option configures a Service.
type Option func(*serviceConfig)

// WithLogger sets the logger for approval events.
func WithLogger(l *slog.Logger) Option {
	return func(c *serviceConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAutoSave persists the state after every change. Offers are written by
// a background goroutine so the rejecting call never waits on the store; call
// Close to flush them.
func WithAutoSave(enabled bool) Option {
	return func(c *serviceConfig) {
		c.autoSave = enabled
	}
}

// WithEvaluatorOptions passes options to the allow-list built from approved
// signatures.
func WithEvaluatorOptions(opts ...policy.Option) Option {
	return func(c *serviceConfig) {
		c.evalOpts = append(c.evalOpts, opts...)
	}
}

// Service holds approved and pending signatures. It permits exactly the
// approved signatures and is safe for concurrent use.
type Service struct {
	config serviceConfig
	store  ports.ApprovalStore

	mu     sync.Mutex
	set    entities.ApprovalSet
	closed bool

	approved atomic.Pointer[policy.Static]

	// saveMu orders store writes; it is never taken while holding mu.
	saveMu  sync.Mutex
	saveErr error
	saveCh  chan struct{}
	stopped chan struct{}
}

// NewService creates a Service backed by store. A nil store keeps state in
// memory only.
func NewService(store ports.ApprovalStore, opts ...Option) *Service {
	cfg := defaultServiceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Service{config: cfg, store: store}
	s.approved.Store(policy.NewStaticFromSignatures(nil, cfg.evalOpts...))
	if cfg.autoSave && store != nil {
		s.saveCh = make(chan struct{}, 1)
		s.stopped = make(chan struct{})
		go s.saveLoop()
	}
	return s
}

// Load replaces the in-memory state with the store's. Approved lines must
// parse.
func (s *Service) Load() error {
	if s.store == nil {
		return nil
	}
	set, err := s.store.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rebuild(set.Approved); err != nil {
		return fmt.Errorf("approvals in %s: %w", s.store.ConfigPath(), err)
	}
	s.set = entities.ApprovalSet{}
	s.set.Merge(set)
	return nil
}

// Save writes the current state to the store.
func (s *Service) Save() error {
	if s.store == nil {
		return nil
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	snapshot := entities.ApprovalSet{
		Approved: slices.Clone(s.set.Approved),
		Pending:  slices.Clone(s.set.Pending),
	}
	s.mu.Unlock()
	return s.store.Save(&snapshot)
}

// Close waits for queued background saves and stops the saver. It returns
// the error of the last background save, if that one failed. Later offers
// stay in memory.
func (s *Service) Close() error {
	s.mu.Lock()
	if s.closed || s.saveCh == nil {
		s.closed = true
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.saveCh)
	s.mu.Unlock()

	<-s.stopped
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.saveErr
}

func (s *Service) saveLoop() {
	defer close(s.stopped)
	for range s.saveCh {
		err := s.Save()
		if err != nil {
			s.config.logger.Error("failed to save approvals", slog.Any("error", err))
		}
		s.saveMu.Lock()
		s.saveErr = err
		s.saveMu.Unlock()
	}
}

// persist saves synchronously after an administrative change. Callers must
// not hold mu.
func (s *Service) persist() {
	if !s.config.autoSave {
		return
	}
	if err := s.Save(); err != nil {
		s.config.logger.Error("failed to save approvals", slog.Any("error", err))
	}
}

// Offer records a rejected signature as pending. Permanently blacklisted,
// already approved, and already pending signatures are ignored. Offer does
// no I/O; with auto-save the background saver is notified.
func (s *Service) Offer(signature string) {
	if policy.IsPermanentlyBlacklisted(signature) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set.IsApproved(signature) || s.set.IsPending(signature) {
		return
	}
	s.set.Pending = append(s.set.Pending, signature)
	s.config.logger.Info("signature pending approval", slog.String("signature", signature))
	if s.saveCh != nil && !s.closed {
		select {
		case s.saveCh <- struct{}{}:
		default:
		}
	}
}

// canonical returns the canonical form of signature, or signature itself
// when it does not parse.
func canonical(signature string) string {
	sig, err := policy.ParseSignature(signature)
	if err != nil {
		return signature
	}
	return sig.String()
}

// Approve moves signature to the approved list. It need not be pending first.
func (s *Service) Approve(signature string) error {
	sig, err := policy.ParseSignature(signature)
	if err != nil {
		return err
	}
	line := sig.String()

	changed, err := s.approve(line)
	if changed {
		s.persist()
	}
	return err
}

func (s *Service) approve(line string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.set.Pending)
	s.set.Pending = slices.DeleteFunc(s.set.Pending, func(p string) bool { return p == line })
	if s.set.IsApproved(line) {
		return len(s.set.Pending) != n, nil
	}
	approved := append(slices.Clone(s.set.Approved), line)
	if err := s.rebuild(approved); err != nil {
		return len(s.set.Pending) != n, err
	}
	s.set.Approved = approved
	if policy.IsPermanentlyBlacklisted(line) {
		s.config.logger.Warn("approved a permanently blacklisted signature", slog.String("signature", line))
	} else {
		s.config.logger.Info("signature approved", slog.String("signature", line))
	}
	return true, nil
}

// Deny drops signature from the pending list.
func (s *Service) Deny(signature string) {
	line := canonical(signature)

	s.mu.Lock()
	n := len(s.set.Pending)
	s.set.Pending = slices.DeleteFunc(s.set.Pending, func(p string) bool { return p == line || p == signature })
	changed := len(s.set.Pending) != n
	s.mu.Unlock()

	if changed {
		s.persist()
	}
}

// Revoke removes signature from the approved list.
func (s *Service) Revoke(signature string) error {
	line := canonical(signature)

	changed, err := s.revoke(line)
	if changed {
		s.persist()
	}
	return err
}

func (s *Service) revoke(line string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set.IsApproved(line) {
		return false, nil
	}
	approved := slices.DeleteFunc(slices.Clone(s.set.Approved), func(a string) bool { return a == line })
	if err := s.rebuild(approved); err != nil {
		return false, err
	}
	s.set.Approved = approved
	return true, nil
}

// Pending returns the signatures awaiting a decision in arrival order.
func (s *Service) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.set.Pending)
}

// Approved returns the approved signatures in approval order.
func (s *Service) Approved() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.set.Approved)
}

// Evaluator returns the allow-list of the currently approved signatures.
func (s *Service) Evaluator() *policy.Static {
	return s.approved.Load()
}

func (s *Service) rebuild(lines []string) error {
	sigs, err := policy.ParseLines(lines, "approvals")
	if err != nil {
		return err
	}
	s.approved.Store(policy.NewStaticFromSignatures(sigs, s.config.evalOpts...))
	return nil
}

func (s *Service) PermitsMethod(method *entities.Method, receiver any, args []any) bool {
	return s.Evaluator().PermitsMethod(method, receiver, args)
}

func (s *Service) PermitsConstructor(constructor *entities.Constructor, args []any) bool {
	return s.Evaluator().PermitsConstructor(constructor, args)
}

func (s *Service) PermitsStaticMethod(method *entities.Method, args []any) bool {
	return s.Evaluator().PermitsStaticMethod(method, args)
}

func (s *Service) PermitsFieldGet(field *entities.Field, receiver any) bool {
	return s.Evaluator().PermitsFieldGet(field, receiver)
}

func (s *Service) PermitsFieldSet(field *entities.Field, receiver any, value any) bool {
	return s.Evaluator().PermitsFieldSet(field, receiver, value)
}

func (s *Service) PermitsStaticFieldGet(field *entities.Field) bool {
	return s.Evaluator().PermitsStaticFieldGet(field)
}

func (s *Service) PermitsStaticFieldSet(field *entities.Field, value any) bool {
	return s.Evaluator().PermitsStaticFieldSet(field, value)
}
