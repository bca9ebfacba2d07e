package ooxml

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	logMu   sync.RWMutex
	pkgLog  = slog.New(slog.NewTextHandler(io.Discard, nil))
	initLog sync.Once
)

// Init hooks the package's diagnostic output up to a debug-level text
// handler on stderr. It is idempotent and purely diagnostic: calling it
// zero, one, or many times never changes inspection results. Callers
// that already own a logger should use SetLogger instead.
func Init() {
	initLog.Do(func() {
		SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	})
}

// SetLogger routes the package's diagnostic output to l. Passing nil
// discards diagnostics again. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	pkgLog = l
}

func logger() *slog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return pkgLog
}
