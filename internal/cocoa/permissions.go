//go:build darwin

// Package cocoa holds the small cgo helpers shared by the capture and
// simulate darwin backends: permission preflight, CGEventSource creation
// and event posting. Event-tap machinery stays local to the capture
// backend, matching how dead-key translation stays local to kbstate.
package cocoa

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework IOKit

#include <ApplicationServices/ApplicationServices.h>
#include <IOKit/hid/IOHIDLib.h>

static int inputkit_axIsProcessTrusted(void) {
	return AXIsProcessTrusted() ? 1 : 0;
}

static int inputkit_checkInputMonitoring(void) {
	return IOHIDCheckAccess(kIOHIDRequestTypeListenEvent) == kIOHIDAccessTypeGranted ? 1 : 0;
}
*/
import "C"

import "errors"

// ErrAccessibilityDenied is returned when the Accessibility permission
// (System Settings > Privacy & Security > Accessibility) is missing.
var ErrAccessibilityDenied = errors.New("cocoa: accessibility permission not granted")

// ErrInputMonitoringDenied is returned when the Input Monitoring
// permission is missing.
var ErrInputMonitoringDenied = errors.New("cocoa: input monitoring permission not granted")

// PreflightAccessibility reports whether this process is trusted for
// Accessibility, required before CGEventTapCreate will succeed.
func PreflightAccessibility() error {
	if C.inputkit_axIsProcessTrusted() == 1 {
		return nil
	}
	return ErrAccessibilityDenied
}

// PreflightInputMonitoring reports whether this process has been
// granted Input Monitoring access.
func PreflightInputMonitoring() error {
	if C.inputkit_checkInputMonitoring() == 1 {
		return nil
	}
	return ErrInputMonitoringDenied
}
