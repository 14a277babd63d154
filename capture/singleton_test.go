package capture

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inputkit/inputkit/event"
)

// resetSingleton clears the process-wide session state between tests.
// Production code never needs this (a process starts exactly one
// session for its whole life in the common case), but the test binary
// runs many independent scenarios in one process.
func resetSingleton(t *testing.T) {
	t.Helper()
	sessionMu.Lock()
	listenLive.Store(false)
	grabLive.Store(false)
	active.Store(nil)
	sessionMu.Unlock()
}

func TestBeginListenThenListenAgainFails(t *testing.T) {
	resetSingleton(t)

	sess, errKind := Begin(ModeListen, false)
	require.Equal(t, ErrNone, errKind)
	require.NotNil(t, sess)
	defer sess.Stop()

	_, errKind = Begin(ModeListen, false)
	assert.Equal(t, ErrAlreadyListening, errKind)
}

func TestBeginGrabThenGrabAgainFailsByDefault(t *testing.T) {
	resetSingleton(t)

	sess, errKind := Begin(ModeGrab, false)
	require.Equal(t, ErrNone, errKind)
	defer sess.Stop()

	_, errKind = Begin(ModeGrab, false)
	assert.Equal(t, ErrAlreadyGrabbing, errKind)
}

// TestWindowsSecondGrabAsymmetry locks in spec.md's documented exception:
// unlike every other double-session case, a second Grab call while one is
// already active is accepted idempotently when the caller passes
// allowSecondGrab, returning the existing session rather than an error.
func TestWindowsSecondGrabAsymmetry(t *testing.T) {
	resetSingleton(t)

	first, errKind := Begin(ModeGrab, true)
	require.Equal(t, ErrNone, errKind)
	defer first.Stop()

	second, errKind := Begin(ModeGrab, true)
	require.Equal(t, ErrNone, errKind)
	assert.Same(t, first, second)
}

func TestBeginListenAndGrabAreIndependentSlots(t *testing.T) {
	resetSingleton(t)

	listenSess, errKind := Begin(ModeListen, false)
	require.Equal(t, ErrNone, errKind)
	defer listenSess.Stop()

	// A grab session is a distinct slot from listen's, so it may start
	// concurrently per spec.md §5's per-mode (not global) singleton.
	grabSess, errKind := Begin(ModeGrab, false)
	require.Equal(t, ErrNone, errKind)
	defer grabSess.Stop()
}

func TestStopIsIdempotentAndFreesTheSlot(t *testing.T) {
	resetSingleton(t)

	var stopped int
	sess, errKind := Begin(ModeListen, false)
	require.Equal(t, ErrNone, errKind)
	sess.SetCallback(nil, func() { stopped++ })

	sess.Stop()
	sess.Stop()
	assert.Equal(t, 1, stopped, "stopFn must run exactly once across repeated Stop calls")
	assert.False(t, IsSessionLive())

	// The slot is free again.
	next, errKind := Begin(ModeListen, false)
	require.Equal(t, ErrNone, errKind)
	defer next.Stop()
}

func TestDispatchPassesThroughCallbackResult(t *testing.T) {
	resetSingleton(t)
	sess, errKind := Begin(ModeGrab, false)
	require.Equal(t, ErrNone, errKind)
	defer sess.Stop()

	var got event.Event
	sess.SetCallback(func(e event.Event) *event.Event {
		got = e
		return nil // suppress
	}, nil)

	in := event.Event{Type: event.EventType{Kind: event.KeyPress, Key: event.KeyA}}
	out := sess.Dispatch(in)

	assert.Nil(t, out)
	assert.Equal(t, event.KeyA, got.Type.Key)
}

func TestDispatchWithNoCallbackPassesThrough(t *testing.T) {
	resetSingleton(t)
	sess, errKind := Begin(ModeListen, false)
	require.Equal(t, ErrNone, errKind)
	defer sess.Stop()

	in := event.Event{Type: event.EventType{Kind: event.MouseMove, X: 1, Y: 2}}
	out := sess.Dispatch(in)
	require.NotNil(t, out)
	assert.Equal(t, in, *out)
}

// TestConcurrentBeginOnlyOneWinner exercises Begin under contention: of N
// concurrent listen attempts, exactly one must succeed.
func TestConcurrentBeginOnlyOneWinner(t *testing.T) {
	resetSingleton(t)

	const n = 16
	var wg sync.WaitGroup
	results := make([]ErrKind, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errKind := Begin(ModeListen, false)
			results[i] = errKind
		}(i)
	}
	wg.Wait()

	var wins int
	for _, r := range results {
		if r == ErrNone {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent Begin(ModeListen) call should win")
	active.Load().Stop()
}
