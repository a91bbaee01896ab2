// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

// Package logging carries the structured logger used by the digitseq
// command.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with consistent field names for digitseq
// operations.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler means
// text at info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger writing JSON to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// New builds a Logger from configuration values. format is "text" or
// "json"; level is one of debug, info, warn, error.
func New(w io.Writer, format, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextLogger(w, lvl), nil
	case "json":
		return NewJSONLogger(w, lvl), nil
	}
	return nil, fmt.Errorf("logging: unknown format %q", format)
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

// WithQuery adds a query field to the logger.
func (l *Logger) WithQuery(query string) *Logger {
	return &Logger{Logger: l.Logger.With("query", query)}
}

// LogFind logs a Find operation.
func (l *Logger) LogFind(ctx context.Context, query string, pos int64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "find failed",
			"query", query,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "find completed",
		"query", query,
		"position", pos,
		"elapsed", elapsed,
	)
}

// LogIndex logs an IndexOf operation.
func (l *Logger) LogIndex(ctx context.Context, n int64, pos int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index failed",
			"n", n,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "index completed",
		"n", n,
		"position", pos,
	)
}

// LogBatch logs the outcome of a batch run.
func (l *Logger) LogBatch(ctx context.Context, total, mismatched, failed int, elapsed time.Duration) {
	if mismatched > 0 || failed > 0 {
		l.WarnContext(ctx, "batch completed with problems",
			"total", total,
			"mismatched", mismatched,
			"failed", failed,
			"elapsed", elapsed,
		)
		return
	}
	l.InfoContext(ctx, "batch completed",
		"total", total,
		"elapsed", elapsed,
	)
}
