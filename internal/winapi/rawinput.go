//go:build windows

package winapi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	procRegisterRawInputDevices = user32.NewProc("RegisterRawInputDevices")
	procGetRawInputData         = user32.NewProc("GetRawInputData")
	procGetRawInputDeviceInfoW  = user32.NewProc("GetRawInputDeviceInfoW")

	hid                    = windows.NewLazySystemDLL("hid.dll")
	procHidPGetCaps        = hid.NewProc("HidP_GetCaps")
	procHidPGetUsageValue  = hid.NewProc("HidP_GetUsageValue")
	procHidPGetValueCaps   = hid.NewProc("HidP_GetValueCaps")
)

// Raw Input device/message constants (winuser.h).
const (
	RIDEVINPUTSINK = 0x00000100
	RIDINPUT       = 0x10000003
	RIMTYPEMOUSE   = 0
	RIMTYPEKEYBOARD = 1
	RIMTYPEHID     = 2

	HIDUsagePageGeneric  = 0x01
	HIDUsageGenericMouse = 0x02
	HIDUsageGenericKeyboard = 0x06

	// HIDUsagePageDigitizer/HIDUsageDigitizerTouchPad select precision
	// touchpad contact reports (spec.md §4.D "usage page 0x0D, usage 0x05").
	HIDUsagePageDigitizer   = 0x0D
	HIDUsageDigitizerTouchPad = 0x05

	RIKeyBreak = 0x01
	RIKeyE0    = 0x02

	HidPInput = 0
)

// RAWINPUTDEVICE registers a (usage page, usage) pair for raw input.
type RAWINPUTDEVICE struct {
	UsagePage uint16
	Usage     uint16
	Flags     uint32
	Target    syscall.Handle
}

// RAWINPUTHEADER prefixes every RAWINPUT record.
type RAWINPUTHEADER struct {
	Type   uint32
	Size   uint32
	Device syscall.Handle
	WParam uintptr
}

// RAWMOUSE is the mouse-shaped variant of RAWINPUT's data union.
type RAWMOUSE struct {
	Flags            uint16
	ButtonFlags      uint16
	ButtonData       uint16
	RawButtons       uint32
	LastX            int32
	LastY            int32
	ExtraInformation uint32
}

// RAWKEYBOARD is the keyboard-shaped variant of RAWINPUT's data union.
type RAWKEYBOARD struct {
	MakeCode         uint16
	Flags            uint16
	Reserved         uint16
	VKey             uint16
	Message          uint32
	ExtraInformation uint32
}

// RAWHID is the HID-shaped variant, used for precision-touchpad reports.
type RAWHID struct {
	SizeHid uint32
	Count   uint32
	// RawData follows in memory; read via RawInputHIDData below.
}

// RegisterRawInputDevices wraps the Win32 call of the same name.
func RegisterRawInputDevices(devices []RAWINPUTDEVICE) error {
	ret, _, err := procRegisterRawInputDevices.Call(
		uintptr(unsafe.Pointer(&devices[0])),
		uintptr(len(devices)),
		unsafe.Sizeof(devices[0]),
	)
	if ret == 0 {
		return err
	}
	return nil
}

// GetRawInputDataSize returns the byte size of the raw input payload
// referenced by an lParam from WM_INPUT, without copying it.
func GetRawInputDataSize(lParam uintptr) uint32 {
	var size uint32
	procGetRawInputData.Call(
		lParam, RIDINPUT, 0,
		uintptr(unsafe.Pointer(&size)),
		unsafe.Sizeof(RAWINPUTHEADER{}),
	)
	return size
}

// GetRawInputData copies the raw input payload for lParam into buf,
// which must be at least GetRawInputDataSize(lParam) bytes.
func GetRawInputData(lParam uintptr, buf []byte) (uint32, error) {
	size := uint32(len(buf))
	ret, _, err := procGetRawInputData.Call(
		lParam, RIDINPUT,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
		unsafe.Sizeof(RAWINPUTHEADER{}),
	)
	if int32(ret) < 0 {
		return 0, err
	}
	return uint32(ret), nil
}

// GetRawInputDeviceInfoPreparsedData fetches the HID preparsed-data
// blob for a raw input device handle, used by HidP_GetCaps/GetUsageValue
// to decode precision-touchpad contact reports.
func GetRawInputDeviceInfoPreparsedData(device syscall.Handle) ([]byte, error) {
	const ridiPreparsedData = 0x20000005
	var size uint32
	procGetRawInputDeviceInfoW.Call(
		uintptr(device), uintptr(ridiPreparsedData),
		0, uintptr(unsafe.Pointer(&size)),
	)
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	ret, _, err := procGetRawInputDeviceInfoW.Call(
		uintptr(device), uintptr(ridiPreparsedData),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size)),
	)
	if int32(ret) < 0 {
		return nil, err
	}
	return buf, nil
}

// HIDPCaps mirrors the fields of HIDP_CAPS this library reads.
type HIDPCaps struct {
	Usage          uint16
	UsagePage      uint16
	NumberInputValueCaps uint16
}

// HidPGetCaps reads the capability summary from a preparsed-data blob.
func HidPGetCaps(preparsed []byte) (HIDPCaps, error) {
	var caps hidpCapsRaw
	ret, _, _ := procHidPGetCaps.Call(
		uintptr(unsafe.Pointer(&preparsed[0])),
		uintptr(unsafe.Pointer(&caps)),
	)
	if ret != 0 {
		return HIDPCaps{}, windows.Errno(ret)
	}
	return HIDPCaps{Usage: caps.Usage, UsagePage: caps.UsagePage, NumberInputValueCaps: caps.NumberInputValueCaps}, nil
}

// hidpCapsRaw is sized to cover the leading fields of HIDP_CAPS that
// HidPGetCaps surfaces; trailing reserved fields are left unread.
type hidpCapsRaw struct {
	Usage                     uint16
	UsagePage                 uint16
	InputReportByteLength     uint16
	OutputReportByteLength    uint16
	FeatureReportByteLength   uint16
	Reserved                  [17]uint16
	NumberLinkCollectionNodes uint16
	NumberInputButtonCaps     uint16
	NumberInputValueCaps      uint16
	NumberInputDataIndices    uint16
}

// HidPGetUsageValue reads a single usage's scaled value (e.g. contact
// count, X, Y) out of a raw HID input report.
func HidPGetUsageValue(preparsed, report []byte, usagePage uint16, usage uint16) (uint32, bool) {
	var value uint32
	ret, _, _ := procHidPGetUsageValue.Call(
		uintptr(HidPInput),
		uintptr(usagePage),
		0, // link collection: 0 (top level)
		uintptr(usage),
		uintptr(unsafe.Pointer(&value)),
		uintptr(unsafe.Pointer(&preparsed[0])),
		uintptr(unsafe.Pointer(&report[0])),
		uintptr(len(report)),
	)
	return value, ret == 0
}
