// Package capture installs the OS-level hook or tap that observes (listen)
// or intercepts (grab) every keyboard and pointing-device event, and
// forwards portable events to a user callback.
package capture

import (
	"sync"
	"sync/atomic"

	"github.com/inputkit/inputkit/event"
)

// Callback receives every captured portable event. For a grab session, a
// nil *event.Event return value requests suppression of the originating
// native event.
type Callback func(event.Event) *event.Event

// Mode distinguishes a passive listen session from an intercepting grab
// session.
type Mode int

const (
	ModeListen Mode = iota
	ModeGrab
)

// Session is a live capture session: one OS hook/tap handle plus the
// write-once callback container the OS-facing half of each backend reads
// from. Once stopped, a Session is never reused — the next Listen/Grab
// call constructs a fresh one.
type Session struct {
	mode     Mode
	callback Callback
	stopOnce sync.Once
	stopFn   func()
}

// These are the process-wide session slots: at most one listen session
// and at most one grab session may be live at a time. The liveness flags
// change under sessionMu only in Begin and Stop, and the active pointer
// is set under sessionMu only by Begin; hook callbacks read the active
// pointer without taking sessionMu, matching the "never hold the
// keyboard-state mutex across the user callback" discipline.
var (
	sessionMu  sync.Mutex
	listenLive atomic.Bool
	grabLive   atomic.Bool
	active     atomic.Pointer[Session]
)

// ErrKind distinguishes AlreadyListening from AlreadyGrabbing without
// this package depending on the facade package's concrete error types;
// the facade wraps these into ListenError/GrabError.
type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrAlreadyListening
	ErrAlreadyGrabbing
)

// Begin attempts to install a new session of the given mode. It returns
// ErrAlreadyListening/ErrAlreadyGrabbing without mutating any state if a
// session is already live — except Windows' documented exception, which
// callers pass via allowSecondGrab: a second Grab call while a grab
// session is already active is accepted idempotently instead of
// rejected.
func Begin(mode Mode, allowSecondGrab bool) (*Session, ErrKind) {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	switch mode {
	case ModeListen:
		if listenLive.Load() {
			return nil, ErrAlreadyListening
		}
	case ModeGrab:
		if grabLive.Load() {
			if allowSecondGrab {
				return active.Load(), ErrNone
			}
			return nil, ErrAlreadyGrabbing
		}
	}

	s := &Session{mode: mode}
	switch mode {
	case ModeListen:
		listenLive.Store(true)
	case ModeGrab:
		grabLive.Store(true)
	}
	active.Store(s)
	return s, ErrNone
}

// SetCallback installs the session's user callback and stop function.
// Called once, before the session's run loop starts.
func (s *Session) SetCallback(cb Callback, stop func()) {
	s.callback = cb
	s.stopFn = stop
}

// Dispatch runs the session callback. It never blocks past the
// callback's own execution time and is always called from the OS hook
// thread, never concurrently with itself.
func (s *Session) Dispatch(e event.Event) *event.Event {
	if s.callback == nil {
		return &e
	}
	return s.callback(e)
}

// Stop tears the session down. Idempotent: a second call is a no-op.
// The live/active bits are intentionally never reset for the container
// closure itself below process life in the sense described by the
// design note — but the liveness flags themselves do need to clear so a
// later Listen/Grab call can start a fresh session.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		if s.stopFn != nil {
			s.stopFn()
		}
		sessionMu.Lock()
		defer sessionMu.Unlock()
		switch s.mode {
		case ModeListen:
			listenLive.Store(false)
		case ModeGrab:
			grabLive.Store(false)
		}
	})
}

// IsSessionLive reports whether any capture session is currently active
// in this process, used by the synthesis engine to decide the
// is_synthetic marker rule ("for every event produced by this library's
// own simulate when a concurrent session exists in the same process").
func IsSessionLive() bool {
	return listenLive.Load() || grabLive.Load()
}
