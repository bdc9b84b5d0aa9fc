package rawhandle

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform reports a handle variant the consumer has no
// support for. Fallback implementations should wrap it so callers can
// test with errors.Is.
var ErrUnsupportedPlatform = errors.New("rawhandle: unsupported platform")

// Dispatch routes a RawWindowHandle to the arm matching its variant.
//
// Arms are optional; Fallback is not. Any variant whose arm is nil, and
// any variant added to the library after the consumer was written, goes
// to Fallback. This is the structured form of the default-arm rule: a
// consumer built on Dispatch cannot be broken by a new platform variant.
type Dispatch struct {
	UIKit      func(UIKitHandle) error
	AppKit     func(AppKitHandle) error
	Orbital    func(OrbitalHandle) error
	Xlib       func(XlibHandle) error
	Xcb        func(XcbHandle) error
	Wayland    func(WaylandHandle) error
	Win32      func(Win32Handle) error
	WinRT      func(WinRTHandle) error
	Web        func(WebHandle) error
	AndroidNDK func(AndroidNDKHandle) error

	// Fallback receives every handle no arm claims. A typical consumer
	// returns an error wrapping ErrUnsupportedPlatform here.
	Fallback func(RawWindowHandle) error
}

// Handle routes h. If h matches no arm and Fallback is nil, Handle
// returns an error wrapping ErrUnsupportedPlatform.
func (d Dispatch) Handle(h RawWindowHandle) error {
	switch v := h.(type) {
	case UIKitHandle:
		if d.UIKit != nil {
			return d.UIKit(v)
		}
	case AppKitHandle:
		if d.AppKit != nil {
			return d.AppKit(v)
		}
	case OrbitalHandle:
		if d.Orbital != nil {
			return d.Orbital(v)
		}
	case XlibHandle:
		if d.Xlib != nil {
			return d.Xlib(v)
		}
	case XcbHandle:
		if d.Xcb != nil {
			return d.Xcb(v)
		}
	case WaylandHandle:
		if d.Wayland != nil {
			return d.Wayland(v)
		}
	case Win32Handle:
		if d.Win32 != nil {
			return d.Win32(v)
		}
	case WinRTHandle:
		if d.WinRT != nil {
			return d.WinRT(v)
		}
	case WebHandle:
		if d.Web != nil {
			return d.Web(v)
		}
	case AndroidNDKHandle:
		if d.AndroidNDK != nil {
			return d.AndroidNDK(v)
		}
	}
	if d.Fallback == nil {
		return fmt.Errorf("%w: %s (no fallback arm)", ErrUnsupportedPlatform, PlatformName(h))
	}
	return d.Fallback(h)
}
