package handletest

import (
	"fmt"
	"testing"

	"github.com/gowindowing/rawhandle"
)

// Stable fails the test if two consecutive calls to p return different
// handles. Providers promise stability absent a platform lifecycle
// event, and no such event can occur between the two calls here.
func Stable(tb testing.TB, p rawhandle.WindowHandleProvider) {
	tb.Helper()
	first := p.RawWindowHandle()
	second := p.RawWindowHandle()
	if first != second {
		tb.Fatalf("provider is unstable across calls: %+v then %+v", first, second)
	}
}

// Classifiable fails the test if the handle returned by p routes to a
// dispatch fallback, i.e. is not a variant this library version defines.
func Classifiable(tb testing.TB, p rawhandle.WindowHandleProvider) {
	tb.Helper()
	d := rawhandle.Dispatch{
		UIKit:      func(rawhandle.UIKitHandle) error { return nil },
		AppKit:     func(rawhandle.AppKitHandle) error { return nil },
		Orbital:    func(rawhandle.OrbitalHandle) error { return nil },
		Xlib:       func(rawhandle.XlibHandle) error { return nil },
		Xcb:        func(rawhandle.XcbHandle) error { return nil },
		Wayland:    func(rawhandle.WaylandHandle) error { return nil },
		Win32:      func(rawhandle.Win32Handle) error { return nil },
		WinRT:      func(rawhandle.WinRTHandle) error { return nil },
		Web:        func(rawhandle.WebHandle) error { return nil },
		AndroidNDK: func(rawhandle.AndroidNDKHandle) error { return nil },
		Fallback: func(h rawhandle.RawWindowHandle) error {
			return fmt.Errorf("%w: %T", rawhandle.ErrUnsupportedPlatform, h)
		},
	}
	if err := d.Handle(p.RawWindowHandle()); err != nil {
		tb.Fatalf("provider returned an unclassifiable handle: %v", err)
	}
}

// Provider returns a WindowHandleProvider that always returns v. It is a
// stub for consumer-side tests; values it carries are whatever the test
// supplies, and the test owns the provider invariants for them.
func Provider(v rawhandle.RawWindowHandle) rawhandle.WindowHandleProvider {
	return fixedProvider{raw: v}
}

type fixedProvider struct {
	raw rawhandle.RawWindowHandle
}

func (p fixedProvider) RawWindowHandle() rawhandle.RawWindowHandle {
	return p.raw
}
