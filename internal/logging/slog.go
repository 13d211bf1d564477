package logging

import (
	"context"
	"io"
	"log/slog"
)

// SlogLogger is the Logger implementation the console runs on. It delegates
// to the context-aware slog methods so handler middleware can pick request
// attributes out of the context.
type SlogLogger struct {
	base *slog.Logger
}

func NewSlogLogger(base *slog.Logger) *SlogLogger {
	return &SlogLogger{base: base}
}

// NewTextLogger builds a SlogLogger writing human-readable lines to w,
// dropping records below level.
func NewTextLogger(w io.Writer, level slog.Level) *SlogLogger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func (sl *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	sl.base.DebugContext(ctx, msg, args...)
}

func (sl *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	sl.base.InfoContext(ctx, msg, args...)
}

func (sl *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	sl.base.WarnContext(ctx, msg, args...)
}

func (sl *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	sl.base.ErrorContext(ctx, msg, args...)
}

// With returns a child logger carrying the given key-value pairs on every
// record.
func (sl *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{base: sl.base.With(args...)}
}
