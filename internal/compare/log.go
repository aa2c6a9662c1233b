package compare

import (
	"log/slog"
	"sync/atomic"

	"github.com/roach88/objcmp/internal/types"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger replaces the package logger. A nil logger restores
// slog.Default(). Safe to call concurrently with comparisons.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// incomparable logs why a comparator gave up and returns Incomparable.
func incomparable(a, b types.Value, reason string, attrs ...any) Result {
	args := append([]any{
		"left_type", a.Type().String(),
		"right_type", b.Type().String(),
		"reason", reason,
	}, attrs...)
	log().Warn("values are incomparable", args...)
	return Incomparable
}
