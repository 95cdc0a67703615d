package uiraster

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so the Debug
// call at the end of each Draw costs no attribute formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr backs Logger. Contexts read it on every log call, so a
// SetLogger after New still reaches existing contexts.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes the logs of every Context that was not given its own
// logger with WithLogger. Nil restores the silent default.
//
// A Context logs outside its pixel loops only:
//   - [slog.LevelInfo]: "uiraster: context created" from New and
//     "uiraster: resized" when Resize changes the size
//   - [slog.LevelWarn]: "uiraster: surface exceeds tile capacity" when the
//     grid outgrows the block, and "uiraster: draw refused ..." from Draw
//   - [slog.LevelDebug]: "uiraster: draw" with the command count and the
//     Stats of each Draw
//
// The command drivers enable it with -v:
//
//	uiraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set with SetLogger, or a silent one. The
// window driver also logs its own surface reallocations through it.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
