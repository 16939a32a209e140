package policy

import (
	"log/slog"

	"github.com/reglet-dev/script-sandbox/domain/ports"
)

// Ensure implementations satisfy the interface.
var _ ports.DenialHandler = (*SlogDenialHandler)(nil)
var _ ports.DenialHandler = (*NopDenialHandler)(nil)

// SlogDenialHandler logs denials at warn level.
type SlogDenialHandler struct {
	Logger *slog.Logger // nil means slog.Default()
}

func (h *SlogDenialHandler) OnDenial(kind string, signature string, reason string) {
	l := h.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Warn("sandbox rejected operation",
		slog.String("kind", kind),
		slog.String("signature", signature),
		slog.String("reason", reason))
}

// NopDenialHandler does nothing.
type NopDenialHandler struct{}

func (h *NopDenialHandler) OnDenial(kind string, signature string, reason string) {}
