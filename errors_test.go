package inputkit

import (
	"errors"
	"testing"
)

func TestListenErrorMessagesAreDistinctPerKind(t *testing.T) {
	kinds := []ListenErrorKind{
		ListenEventTapError, ListenLoopSourceError,
		ListenKeyHookError, ListenMouseHookError, ListenAlreadyListening,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		msg := (&ListenError{Kind: k}).Error()
		if msg == "" {
			t.Errorf("kind %v produced an empty message", k)
		}
		if seen[msg] {
			t.Errorf("kind %v produced a message shared with another kind: %q", k, msg)
		}
		seen[msg] = true
	}
}

func TestListenErrorUnknownKindHasFallbackMessage(t *testing.T) {
	msg := (&ListenError{Kind: ListenErrorKind(999)}).Error()
	if msg == "" {
		t.Error("unknown ListenErrorKind produced an empty message")
	}
}

func TestGrabErrorMessagesAreDistinctPerKind(t *testing.T) {
	kinds := []GrabErrorKind{
		GrabEventTapError, GrabLoopSourceError, GrabKeyHookError,
		GrabMouseHookError, GrabAlreadyGrabbing, GrabExitGrabError,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		msg := (&GrabError{Kind: k, Message: "detail"}).Error()
		if msg == "" {
			t.Errorf("kind %v produced an empty message", k)
		}
		if seen[msg] {
			t.Errorf("kind %v produced a message shared with another kind: %q", k, msg)
		}
		seen[msg] = true
	}
}

func TestGrabExitGrabErrorIncludesMessage(t *testing.T) {
	err := &GrabError{Kind: GrabExitGrabError, Message: "could not stop hook"}
	if got := err.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestErrAlreadyListeningSentinelMatchesSameKindOnly(t *testing.T) {
	if !errors.Is(&ListenError{Kind: ListenAlreadyListening}, ErrAlreadyListening) {
		t.Error("errors.Is failed to match two ListenError values with the same Kind")
	}
	if errors.Is(&ListenError{Kind: ListenEventTapError}, ErrAlreadyListening) {
		t.Error("errors.Is matched ListenError values with different Kinds")
	}
}

func TestErrAlreadyGrabbingSentinelMatchesSameKindOnly(t *testing.T) {
	if !errors.Is(&GrabError{Kind: GrabAlreadyGrabbing}, ErrAlreadyGrabbing) {
		t.Error("errors.Is failed to match two GrabError values with the same Kind")
	}
	if errors.Is(&GrabError{Kind: GrabEventTapError}, ErrAlreadyGrabbing) {
		t.Error("errors.Is matched GrabError values with different Kinds")
	}
}

func TestSimulateErrorMessageWithAndWithoutReason(t *testing.T) {
	withReason := (&SimulateError{Reason: "raw variant"}).Error()
	withoutReason := (&SimulateError{}).Error()
	if withReason == withoutReason {
		t.Error("SimulateError.Error() ignored a non-empty Reason")
	}
}

func TestDisplayErrorMessageWithAndWithoutReason(t *testing.T) {
	withReason := (&DisplayError{Reason: "no display connected"}).Error()
	withoutReason := (&DisplayError{}).Error()
	if withReason == withoutReason {
		t.Error("DisplayError.Error() ignored a non-empty Reason")
	}
}
