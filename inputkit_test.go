package inputkit

import (
	"errors"
	"testing"

	"github.com/inputkit/inputkit/capture"
	"github.com/inputkit/inputkit/event"
)

func TestClassifyListenErrorMapsEveryStage(t *testing.T) {
	cases := []struct {
		stage string
		want  ListenErrorKind
	}{
		{"already_listening", ListenAlreadyListening},
		{"already_grabbing", ListenAlreadyListening},
		{"accessibility", ListenEventTapError},
		{"event_tap", ListenEventTapError},
		{"input_monitoring", ListenEventTapError},
		{"run_loop_source", ListenLoopSourceError},
		{"keyboard_hook", ListenKeyHookError},
		{"mouse_hook", ListenMouseHookError},
		{"x11_open", ListenEventTapError},
		{"some_unmapped_future_stage", ListenEventTapError},
	}
	for _, c := range cases {
		err := classifyListenError(&capture.HookInstallError{Stage: c.stage, Code: 5})
		le, ok := err.(*ListenError)
		if !ok {
			t.Fatalf("stage %q: classifyListenError returned %T, want *ListenError", c.stage, err)
		}
		if le.Kind != c.want {
			t.Errorf("stage %q: Kind = %v, want %v", c.stage, le.Kind, c.want)
		}
	}
}

func TestClassifyListenErrorPreservesHookCode(t *testing.T) {
	err := classifyListenError(&capture.HookInstallError{Stage: "keyboard_hook", Code: 1783})
	le := err.(*ListenError)
	if le.Code != 1783 {
		t.Errorf("Code = %d, want 1783", le.Code)
	}
}

func TestClassifyListenErrorAlreadyListeningIsSentinel(t *testing.T) {
	err := classifyListenError(&capture.HookInstallError{Stage: "already_listening"})
	if !errors.Is(err, ErrAlreadyListening) {
		t.Errorf("classifyListenError(already_listening) = %v, want errors.Is match with ErrAlreadyListening", err)
	}
}

func TestClassifyListenErrorFallsBackOnUnknownErrorType(t *testing.T) {
	err := classifyListenError(errors.New("boom"))
	le, ok := err.(*ListenError)
	if !ok || le.Kind != ListenEventTapError {
		t.Errorf("classifyListenError(opaque err) = %#v, want *ListenError{Kind: ListenEventTapError}", err)
	}
}

func TestClassifyGrabErrorMapsEveryStage(t *testing.T) {
	cases := []struct {
		stage string
		want  GrabErrorKind
	}{
		{"already_grabbing", GrabAlreadyGrabbing},
		{"already_listening", GrabAlreadyGrabbing},
		{"accessibility", GrabEventTapError},
		{"event_tap", GrabEventTapError},
		{"input_monitoring", GrabEventTapError},
		{"run_loop_source", GrabLoopSourceError},
		{"keyboard_hook", GrabKeyHookError},
		{"mouse_hook", GrabMouseHookError},
		{"x11_open", GrabEventTapError},
	}
	for _, c := range cases {
		err := classifyGrabError(&capture.HookInstallError{Stage: c.stage, Code: 9})
		ge, ok := err.(*GrabError)
		if !ok {
			t.Fatalf("stage %q: classifyGrabError returned %T, want *GrabError", c.stage, err)
		}
		if ge.Kind != c.want {
			t.Errorf("stage %q: Kind = %v, want %v", c.stage, ge.Kind, c.want)
		}
	}
}

func TestClassifyGrabErrorAlreadyGrabbingIsSentinel(t *testing.T) {
	err := classifyGrabError(&capture.HookInstallError{Stage: "already_grabbing"})
	if !errors.Is(err, ErrAlreadyGrabbing) {
		t.Errorf("classifyGrabError(already_grabbing) = %v, want errors.Is match with ErrAlreadyGrabbing", err)
	}
}

func TestSetEventPopupAndGetKeyUnicodeToggleAtomics(t *testing.T) {
	loadConfigOnce()

	SetEventPopup(true)
	if !eventPopup.Load() {
		t.Error("eventPopup not set after SetEventPopup(true)")
	}
	SetEventPopup(false)
	if eventPopup.Load() {
		t.Error("eventPopup still set after SetEventPopup(false)")
	}

	SetGetKeyUnicode(false)
	if getKeyUnicode.Load() {
		t.Error("getKeyUnicode still set after SetGetKeyUnicode(false)")
	}
	SetGetKeyUnicode(true)
	if !getKeyUnicode.Load() {
		t.Error("getKeyUnicode not set after SetGetKeyUnicode(true)")
	}
}

func TestCurrentOptionsReflectsToggledAtomics(t *testing.T) {
	loadConfigOnce()
	defer func() {
		SetEventPopup(false)
		SetGetKeyUnicode(true)
	}()

	SetEventPopup(true)
	SetGetKeyUnicode(false)
	opts := currentOptions()
	if !opts.EventPopup {
		t.Error("currentOptions().EventPopup = false, want true")
	}
	if opts.GetKeyUnicode {
		t.Error("currentOptions().GetKeyUnicode = true, want false")
	}
}

func TestExitListenAndExitGrabAreNoOpsWithNoActiveSession(t *testing.T) {
	facadeMu.Lock()
	activeSess = nil
	facadeMu.Unlock()

	if err := ExitListen(); err != nil {
		t.Errorf("ExitListen() with no active session = %v, want nil", err)
	}
	if err := ExitGrab(); err != nil {
		t.Errorf("ExitGrab() with no active session = %v, want nil", err)
	}
}

func TestExitSessionIgnoresModeMismatch(t *testing.T) {
	sess, errKind := capture.Begin(capture.ModeListen, false)
	if errKind != capture.ErrNone {
		t.Fatalf("capture.Begin: %v", errKind)
	}
	t.Cleanup(func() {
		sess.Stop()
		facadeMu.Lock()
		activeSess = nil
		facadeMu.Unlock()
	})
	setActive(sess, capture.ModeListen)

	// ExitGrab must not tear down an active *listen* session.
	if err := ExitGrab(); err != nil {
		t.Errorf("ExitGrab() = %v, want nil", err)
	}
	facadeMu.Lock()
	stillActive := activeSess
	facadeMu.Unlock()
	if stillActive == nil {
		t.Error("ExitGrab tore down the active listen session")
	}
}

// TestListenRawFilterPredicateMatchesIsRaw locks in the predicate
// ListenRaw wraps Listen's callback with (e.Type.Kind.IsRaw()). ListenRaw
// itself can't be exercised in a unit test since Listen installs a live
// OS capture session; this pins the filtering rule it relies on instead.
func TestListenRawFilterPredicateMatchesIsRaw(t *testing.T) {
	mixed := []event.EventType{
		event.NewKeyPress(event.KeyA),
		event.NewKeyPressRaw(event.KeyA),
		event.NewMouseMove(1, 2),
		event.NewMouseMoveRaw(1, 2),
	}

	var seen []event.Kind
	filter := func(e event.Event) {
		if e.Type.Kind.IsRaw() {
			seen = append(seen, e.Type.Kind)
		}
	}
	for _, et := range mixed {
		filter(event.Event{Type: et})
	}

	if len(seen) != 2 {
		t.Fatalf("got %d raw events, want 2", len(seen))
	}
	for _, k := range seen {
		if !k.IsRaw() {
			t.Errorf("filter let a non-raw kind %v through", k)
		}
	}
}
