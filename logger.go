package thumbkit

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/thumbkit/internal/text"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine,
// including asset decode goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for thumbkit and its sub-packages.
// By default thumbkit produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by thumbkit:
//   - [slog.LevelDebug]: render passes, decode timings, cache statistics,
//     glyphs that fail to load
//   - [slog.LevelInfo]: generation lifecycle
//   - [slog.LevelWarn]: asset decode failures, unavailable surfaces,
//     degraded fallbacks
//
// Example:
//
//	thumbkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	text.SetLogger(l)
}

// Logger returns the current logger. Sub-packages (genai, cmd/thumbkit)
// call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
