package rawhandle

import (
	"reflect"
	"testing"
	"unsafe"
)

var payloadZeroValues = []RawWindowHandle{
	UIKitHandle{},
	AppKitHandle{},
	OrbitalHandle{},
	XlibHandle{},
	XcbHandle{},
	WaylandHandle{},
	Win32Handle{},
	WinRTHandle{},
	WebHandle{},
	AndroidNDKHandle{},
}

func TestZeroValueIsAllSentinel(t *testing.T) {
	for _, h := range payloadZeroValues {
		v := reflect.ValueOf(h)
		for i := 0; i < v.NumField(); i++ {
			if !v.Field(i).IsZero() {
				t.Errorf("%T.%s: zero value field is not at its sentinel", h, v.Type().Field(i).Name)
			}
		}
	}
}

func TestFieldOverrideReadBack(t *testing.T) {
	var backing int
	p := unsafe.Pointer(&backing)

	xlib := XlibHandle{Window: 0x3a0000f}
	if xlib.Window != 0x3a0000f {
		t.Fatalf("Window = %#x, want 0x3a0000f", xlib.Window)
	}
	if xlib.Display != nil {
		t.Fatal("unset Display must stay at its sentinel")
	}

	wl := WaylandHandle{Surface: p}
	if wl.Surface != p {
		t.Fatalf("Surface = %p, want %p", wl.Surface, p)
	}
	if wl.Display != nil {
		t.Fatal("unset Display must stay at its sentinel")
	}

	win := Win32Handle{HWND: 0xdead10, HInstance: 0x400000}
	if win.HWND != 0xdead10 || win.HInstance != 0x400000 {
		t.Fatalf("Win32Handle = %+v", win)
	}
}

func TestUnionRoundTrip(t *testing.T) {
	var backing int
	conn := unsafe.Pointer(&backing)

	in := XcbHandle{Window: 912, Connection: conn}
	var h RawWindowHandle = in

	out, ok := h.(XcbHandle)
	if !ok {
		t.Fatalf("round trip lost the variant: %T", h)
	}
	if out != in {
		t.Fatalf("round trip changed the payload: %+v != %+v", out, in)
	}
}

// Two variants with equal-looking numeric fields are distinct handles:
// the variant is part of the identity.
func TestVariantIsPartOfIdentity(t *testing.T) {
	var web RawWindowHandle = WebHandle{ID: 42}
	var win RawWindowHandle = Win32Handle{HWND: 42}

	if web == win {
		t.Fatal("WebHandle{42} and Win32Handle{42} compared equal")
	}
	if _, ok := web.(Win32Handle); ok {
		t.Fatal("web handle matched the win32 branch")
	}
	if _, ok := win.(WebHandle); ok {
		t.Fatal("win32 handle matched the web branch")
	}
}

// A producer that only has a display connection reports exactly that:
// display set, window left at the sentinel.
func TestPartialXlibPayload(t *testing.T) {
	var backing int
	display := unsafe.Pointer(&backing)

	var h RawWindowHandle = XlibHandle{Display: display}

	out, ok := h.(XlibHandle)
	if !ok {
		t.Fatalf("expected XlibHandle, got %T", h)
	}
	if out.Window != 0 {
		t.Fatalf("Window = %#x, want sentinel 0", out.Window)
	}
	if out.Display != display {
		t.Fatalf("Display = %p, want %p", out.Display, display)
	}
}

func TestPlatformName(t *testing.T) {
	tests := []struct {
		h    RawWindowHandle
		want string
	}{
		{UIKitHandle{}, "uikit"},
		{AppKitHandle{}, "appkit"},
		{OrbitalHandle{}, "orbital"},
		{XlibHandle{}, "xlib"},
		{XcbHandle{}, "xcb"},
		{WaylandHandle{}, "wayland"},
		{Win32Handle{}, "win32"},
		{WinRTHandle{}, "winrt"},
		{WebHandle{}, "web"},
		{AndroidNDKHandle{}, "android-ndk"},
		{futureHandle{}, "unknown"},
	}
	for _, tt := range tests {
		if got := PlatformName(tt.h); got != tt.want {
			t.Errorf("PlatformName(%T) = %q, want %q", tt.h, got, tt.want)
		}
	}
}
