// Package logging builds the slog logger used across the plugin.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shockbase/levelborder/internal/config"
)

// New creates a logger for the configured format. JSON logs go to w; dev logs
// go through a zap development logger on stderr. The returned function
// flushes buffered output.
func New(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, func() error, error) {
	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
	}

	switch cfg.Format {
	case config.LogFormatDev:
		zapCfg := zap.NewDevelopmentConfig()
		// slog debug arrives from logr as V(4); filtering happens in levelHandler
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-4))
		zapLog, err := zapCfg.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("build zap logger: %w", err)
		}
		handler := logr.ToSlogHandler(zapr.NewLogger(zapLog))
		return slog.New(&levelHandler{Handler: handler, level: level}), zapLog.Sync, nil

	case config.LogFormatJSON, "":
		handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
		return slog.New(handler), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

// levelHandler drops records below a minimum level
type levelHandler struct {
	slog.Handler
	level slog.Leveler
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.Handler.Enabled(ctx, level)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{Handler: h.Handler.WithGroup(name), level: h.level}
}
