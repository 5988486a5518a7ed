package gassert

import (
	"log/slog"
	"sync/atomic"
)

var sink atomic.Pointer[slog.Logger]

// SetLogger sets the logger that receives assertion failures.
// A nil logger restores the default of [slog.Default].
//
// SetLogger is safe for concurrent use,
// but it is intended to be called once during program initialization.
func SetLogger(log *slog.Logger) {
	sink.Store(log)
}

// Logger returns the logger that receives assertion failures.
func Logger() *slog.Logger {
	if log := sink.Load(); log != nil {
		return log
	}
	return slog.Default()
}
