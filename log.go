package inputkit

import (
	"log"

	"github.com/inputkit/inputkit/kbstate"
)

// Logger receives session-lifecycle diagnostics: hook install/teardown,
// singleton-violation attempts, synthesis failures. It is never called
// per-event — the capture hot path stays allocation-free regardless of
// which Logger is installed.
type Logger interface {
	Printf(format string, args ...any)
}

// noopLogger discards everything. It is the zero-configuration default,
// matching the teacher's convention of a silent library until a caller
// opts into diagnostics.
type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// stdLogger adapts the standard library's log.Logger.
type stdLogger struct{ l *log.Logger }

func (s stdLogger) Printf(format string, args ...any) { s.l.Printf(format, args...) }

var activeLogger Logger = noopLogger{}

// SetLogger installs the Logger used for session-lifecycle diagnostics
// across the facade and its subpackages (capture's hook install/
// uninstall, kbstate's main-thread translation timeouts). Passing nil
// restores the silent default.
func SetLogger(l Logger) {
	if l == nil {
		activeLogger = noopLogger{}
		kbstate.SetLogger(nil)
		return
	}
	activeLogger = l
	kbstate.SetLogger(l)
}

// StdLogger wraps l so it satisfies Logger, for callers that already
// configure a standard library *log.Logger elsewhere.
func StdLogger(l *log.Logger) Logger {
	return stdLogger{l: l}
}

func logf(format string, args ...any) {
	activeLogger.Printf(format, args...)
}
