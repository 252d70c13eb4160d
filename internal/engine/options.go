package engine

import (
	"github.com/dshills/streamed/internal/config"
	"github.com/dshills/streamed/internal/diag"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithConfig sets the tunables the Engine's document and history use.
// Without this Option an Engine uses config.DefaultConfig().
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithLogger enables diagnostics logging. Without this Option the
// Engine discards all diagnostics.
func WithLogger(l *diag.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}
