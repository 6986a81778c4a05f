package stream

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
)

var leakLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used when a leaked stream is closed from
// its finalizer. A nil logger restores slog.Default.
func SetLogger(l *slog.Logger) {
	leakLogger.Store(l)
}

func logLeak(msg string, args ...any) {
	l := leakLogger.Load()
	if l == nil {
		l = slog.Default()
	}
	l.Error(msg, args...)
}

// CloseOnFinalize arranges for f to be closed when it becomes
// unreachable without having been closed explicitly.
//
// Callers are expected to Close streams themselves; this is the
// teardown fallback for leaked handles. A close failure at this point
// cannot be propagated to anyone, so it is logged and swallowed in
// release builds, and panics under the "iodebug" build tag to surface
// the bug immediately.
func CloseOnFinalize[T File](f T) T {
	runtime.SetFinalizer(f, closeFromFinalizer[T])
	return f
}

func closeFromFinalizer[T File](f T) {
	if f.Closed() {
		return
	}
	err := f.Close()
	if err == nil {
		return
	}
	if DebugChecks {
		panic(fmt.Sprintf("stream: error closing leaked %T: %v", f, err))
	}
	logLeak("error ignored when closing leaked stream",
		"type", fmt.Sprintf("%T", f),
		"error", err,
	)
}
