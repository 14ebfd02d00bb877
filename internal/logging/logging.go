// Package logging provides the nil-safe structured-logging wrapper used
// across the module: a *Logger may always be called even when it was never
// assigned a real zap logger, matching the "optional *zap.SugaredLogger
// field" convention common to library code that doesn't want to force
// global log configuration on its callers.
package logging

import "go.uber.org/zap"

// Logger wraps a *zap.SugaredLogger that may be nil. Every method is a
// no-op on a nil receiver or a nil underlying logger, so callers never need
// a conditional before logging.
type Logger struct {
	s *zap.SugaredLogger
}

// New wraps an existing sugared logger. Passing nil is valid and yields a
// Logger whose methods are all no-ops.
func New(s *zap.SugaredLogger) *Logger { return &Logger{s: s} }

// NewNop returns a Logger backed by zap's no-op core, useful as a default
// when a caller hasn't configured logging at all.
func NewNop() *Logger { return &Logger{s: zap.NewNop().Sugar()} }

func (l *Logger) Debugw(msg string, kv ...any) {
	if l == nil || l.s == nil {
		return
	}
	l.s.Debugw(msg, kv...)
}

func (l *Logger) Infow(msg string, kv ...any) {
	if l == nil || l.s == nil {
		return
	}
	l.s.Infow(msg, kv...)
}

func (l *Logger) Warnw(msg string, kv ...any) {
	if l == nil || l.s == nil {
		return
	}
	l.s.Warnw(msg, kv...)
}

func (l *Logger) Errorw(msg string, kv ...any) {
	if l == nil || l.s == nil {
		return
	}
	l.s.Errorw(msg, kv...)
}
