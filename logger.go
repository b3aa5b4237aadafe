package gray

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record; Enabled is false at all levels.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

// SetLogger routes diagnostics from gray and its sub-packages to l.
// nil restores the silent default. See the Logging section of the package
// documentation for what is logged.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed with SetLogger, or a silent one.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
