package rawhandle

import (
	"errors"
	"fmt"
	"testing"
)

// futureHandle stands in for a platform variant added in a later
// release. Only this package can declare variants, so the stand-in
// lives in an in-package test file.
type futureHandle struct{}

func (futureHandle) isRawWindowHandle() {}

func fullDispatch(got *string) Dispatch {
	return Dispatch{
		UIKit:      func(UIKitHandle) error { *got = "uikit"; return nil },
		AppKit:     func(AppKitHandle) error { *got = "appkit"; return nil },
		Orbital:    func(OrbitalHandle) error { *got = "orbital"; return nil },
		Xlib:       func(XlibHandle) error { *got = "xlib"; return nil },
		Xcb:        func(XcbHandle) error { *got = "xcb"; return nil },
		Wayland:    func(WaylandHandle) error { *got = "wayland"; return nil },
		Win32:      func(Win32Handle) error { *got = "win32"; return nil },
		WinRT:      func(WinRTHandle) error { *got = "winrt"; return nil },
		Web:        func(WebHandle) error { *got = "web"; return nil },
		AndroidNDK: func(AndroidNDKHandle) error { *got = "android-ndk"; return nil },
		Fallback: func(h RawWindowHandle) error {
			*got = "fallback"
			return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, PlatformName(h))
		},
	}
}

func TestDispatchRoutesEveryVariant(t *testing.T) {
	for _, h := range payloadZeroValues {
		var got string
		if err := fullDispatch(&got).Handle(h); err != nil {
			t.Fatalf("Handle(%T): %v", h, err)
		}
		if want := PlatformName(h); got != want {
			t.Errorf("Handle(%T) routed to %q, want %q", h, got, want)
		}
	}
}

func TestDispatchUnknownVariantHitsFallback(t *testing.T) {
	var got string
	err := fullDispatch(&got).Handle(futureHandle{})
	if got != "fallback" {
		t.Fatalf("future variant routed to %q, want fallback", got)
	}
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("err = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestDispatchNilArmHitsFallback(t *testing.T) {
	hit := false
	d := Dispatch{
		Web: func(WebHandle) error { return nil },
		Fallback: func(RawWindowHandle) error {
			hit = true
			return nil
		},
	}
	if err := d.Handle(XlibHandle{}); err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("variant with no arm did not reach Fallback")
	}
}

func TestDispatchNilFallback(t *testing.T) {
	err := Dispatch{}.Handle(WebHandle{ID: 1})
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("err = %v, want ErrUnsupportedPlatform", err)
	}
}
