package gocompsel

import (
	"context"
	"log/slog"
)

// Option configures a SelectionRules registry at construction time.
type Option func(*SelectionRules)

// WithLogger sets a structured logger for registration and evaluation
// diagnostics. If not set, logging is disabled (silent mode).
//
// The library uses log/slog (Go 1.21+) which supports any backend via
// handlers. For example, zap users can use: slog.New(zapslog.NewHandler(zapCore, nil))
//
// Example:
//
//	rules := NewSelectionRules(WithLogger(slog.Default()))
func WithLogger(l *slog.Logger) Option {
	return func(r *SelectionRules) {
		if l != nil {
			r.logger = l
		}
	}
}

// discardHandler is a slog.Handler that discards all log records.
// This is used when no logger is configured to avoid nil checks throughout the code.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
