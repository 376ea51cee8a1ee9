// Copyright 2024 Aleksandr Demakin. All rights reserved.

package floatrep

import (
	"context"
	"log/slog"

	mu "github.com/avdva/floatrep/internal/mathutil"
)

type options struct {
	logger *slog.Logger
}

// Option configures an Assembler.
type Option func(*options)

// WithLogger sets a trace sink. Number logs its arguments, derived constants,
// intermediate values and the branch taken at slog.LevelDebug.
// A nil logger disables tracing, which is the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func (a *Assembler) tracing() bool {
	return a.logger != nil && a.logger.Enabled(context.Background(), slog.LevelDebug)
}

func (a *Assembler) trace(msg string, attrs ...slog.Attr) {
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

func (a *Assembler) bitsAttr(key string, b Bits) slog.Attr {
	return slog.String(key, mu.FormatHex(a.t.layout().StorageBits, b))
}
