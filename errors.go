package inputkit

import "fmt"

// ListenErrorKind enumerates the ways Listen can fail to start a session.
// No error carries a live OS handle (spec.md §4.A).
type ListenErrorKind int

const (
	ListenEventTapError ListenErrorKind = iota
	ListenLoopSourceError
	ListenKeyHookError
	ListenMouseHookError
	ListenAlreadyListening
)

// ListenError is returned by Listen.
type ListenError struct {
	Kind ListenErrorKind
	// Code carries the originating Win32 error for Key/MouseHookError.
	Code uint32
}

func (e *ListenError) Error() string {
	switch e.Kind {
	case ListenEventTapError:
		return "inputkit: failed to create event tap"
	case ListenLoopSourceError:
		return "inputkit: failed to attach run loop source"
	case ListenKeyHookError:
		return fmt.Sprintf("inputkit: failed to install keyboard hook (win32 code %d)", e.Code)
	case ListenMouseHookError:
		return fmt.Sprintf("inputkit: failed to install mouse hook (win32 code %d)", e.Code)
	case ListenAlreadyListening:
		return "inputkit: a listen session is already active in this process"
	default:
		return "inputkit: unknown listen error"
	}
}

// GrabErrorKind enumerates the ways Grab can fail.
type GrabErrorKind int

const (
	GrabEventTapError GrabErrorKind = iota
	GrabLoopSourceError
	GrabKeyHookError
	GrabMouseHookError
	GrabAlreadyGrabbing
	GrabExitGrabError
)

// GrabError is returned by Grab.
type GrabError struct {
	Kind    GrabErrorKind
	Code    uint32
	Message string
}

func (e *GrabError) Error() string {
	switch e.Kind {
	case GrabEventTapError:
		return "inputkit: failed to create event tap"
	case GrabLoopSourceError:
		return "inputkit: failed to attach run loop source"
	case GrabKeyHookError:
		return fmt.Sprintf("inputkit: failed to install keyboard hook (win32 code %d)", e.Code)
	case GrabMouseHookError:
		return fmt.Sprintf("inputkit: failed to install mouse hook (win32 code %d)", e.Code)
	case GrabAlreadyGrabbing:
		return "inputkit: a grab session is already active in this process"
	case GrabExitGrabError:
		return "inputkit: exit_grab failed: " + e.Message
	default:
		return "inputkit: unknown grab error"
	}
}

// SimulateError is returned by Simulate when a portable event cannot be
// represented on the current OS. No OS call is issued when this is
// returned.
type SimulateError struct {
	Reason string
}

func (e *SimulateError) Error() string {
	if e.Reason == "" {
		return "inputkit: event could not be synthesized on this platform"
	}
	return "inputkit: event could not be synthesized on this platform: " + e.Reason
}

// DisplayError is returned by DisplaySize.
type DisplayError struct {
	Reason string
}

func (e *DisplayError) Error() string {
	if e.Reason == "" {
		return "inputkit: failed to query display size"
	}
	return "inputkit: failed to query display size: " + e.Reason
}

// Sentinel values usable with errors.Is for the singleton-violation cases.
var (
	ErrAlreadyListening = &ListenError{Kind: ListenAlreadyListening}
	ErrAlreadyGrabbing  = &GrabError{Kind: GrabAlreadyGrabbing}
)

func (e *ListenError) Is(target error) bool {
	t, ok := target.(*ListenError)
	return ok && t.Kind == e.Kind
}

func (e *GrabError) Is(target error) bool {
	t, ok := target.(*GrabError)
	return ok && t.Kind == e.Kind
}
