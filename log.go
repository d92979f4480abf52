package guidraw

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// logLevel controls the level of the logger installed by SetVerbose.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// nopHandler is a slog.Handler that discards all records. Enabled returns
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the package logger used by renderers created without
// WithLogger. By default guidraw produces no log output. Pass nil to
// restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: buffer allocation, texture registration, frame stats
//   - [slog.LevelWarn]: aborted frames
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// SetVerbose installs a text logger on stderr. With v set it logs at
// debug level, otherwise at info level.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
	SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}
