package watchface

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false, so callers skip
// building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger sets the logger used by the runtime and the faces. Passing nil
// restores the default, which logs nothing. It may be called at any time
// from any goroutine.
//
// Levels:
//   - [slog.LevelDebug]: events, redraws, label placement
//   - [slog.LevelInfo]: face load/unload, vibration and backlight requests
//   - [slog.LevelWarn]: label placement fell back to the default position
//
// Example:
//
//	watchface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger. Face packages log through it.
func Logger() *slog.Logger {
	return logger.Load()
}
