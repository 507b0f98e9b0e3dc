package glass

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so callers skip
// attribute evaluation and message formatting altogether.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(slog.New(discardHandler{}))
}

// SetLogger configures the logger used by glass and its sub-packages.
// By default nothing is logged. Passing nil restores the silent default.
//
// Log levels used by glass:
//   - [slog.LevelDebug]: per-call diagnostics (surface size, filter scale, buffer reuse)
//   - [slog.LevelWarn]: frames skipped by the [Scheduler] after a failed synthesis
//
// Example:
//
//	glass.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	activeLogger.Store(l)
}

// Logger returns the logger currently used by glass.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
