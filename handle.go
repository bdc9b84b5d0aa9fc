package rawhandle

// RawWindowHandle is the discriminated union of all per-platform window
// handle payloads. A value holds exactly one payload; the concrete type
// is the discriminant.
//
// The variant set is non-exhaustive: new platforms are added over time
// and are not considered breaking changes. Any type switch over a
// RawWindowHandle must carry a default arm that treats the value as an
// unsupported platform (see Dispatch).
//
// Note that every variant can occur on every target. None are hidden
// behind build tags, and a provider is allowed to return something
// unexpected for its platform (an XlibHandle on macOS under XQuartz is
// legal, just unusual).
type RawWindowHandle interface {
	isRawWindowHandle()
}

// WindowHandleProvider is implemented by window-owning types to expose
// their raw platform handle.
//
// Implementing this interface is a trust assertion the type system
// cannot check. An implementation must uphold both of the following:
//
//  1. Every field in the returned payload that is not at its zero
//     sentinel is a genuine, currently-valid handle from the platform's
//     windowing system.
//  2. Repeated calls return handles describing the same underlying
//     window, as long as no platform-specific lifecycle event (such as
//     surface recreation on Android) has occurred in between.
//
// There is no failure mode: a type that cannot supply a handle in some
// state must not present itself as a WindowHandleProvider in that state.
//
// Implementations should still make a best-effort attempt to fill in
// every field they can, even ones derivable only indirectly through
// other platform APIs. If a field a downstream consumer needs is left
// empty, the consumer has to derive it from the fields that are set, or
// give up.
type WindowHandleProvider interface {
	RawWindowHandle() RawWindowHandle
}

// TrustedWindowHandle pairs a RawWindowHandle with the assertion that it
// satisfies the WindowHandleProvider invariants.
//
// Payload fields are ordinary exported struct fields, so anyone can
// assemble an arbitrary RawWindowHandle value. Code that passes raw
// handle values to native APIs needs something stronger than "someone
// built this struct": it needs a value whose construction provenance
// says the invariants hold. That is all this type is. It carries no
// extra state, performs no checking, and owns nothing.
type TrustedWindowHandle struct {
	raw RawWindowHandle
}

// TrustRawWindowHandle asserts that raw satisfies the
// WindowHandleProvider invariants and wraps it.
//
// This is the unchecked trust entry point. The caller is solely
// responsible for the invariants actually holding; supplying a value
// that violates them does not fail here, it causes undefined behavior
// wherever the handle is later handed to a native API. Call sites of
// this function are the places to audit.
func TrustRawWindowHandle(raw RawWindowHandle) TrustedWindowHandle {
	return TrustedWindowHandle{raw: raw}
}

// NewTrustedWindowHandle reads p's handle into a trusted value.
//
// p's own implementation already asserts the invariants, so no further
// assertion is needed here. If the invariants turn out not to hold, the
// fault lies with p's implementation, not with this function.
func NewTrustedWindowHandle(p WindowHandleProvider) TrustedWindowHandle {
	return TrustedWindowHandle{raw: p.RawWindowHandle()}
}

// RawWindowHandle returns the wrapped value unchanged. TrustedWindowHandle
// is itself a WindowHandleProvider, so a trusted value can be passed
// anywhere a provider is expected without re-asserting trust.
func (t TrustedWindowHandle) RawWindowHandle() RawWindowHandle {
	return t.raw
}

// PlatformName returns a short lowercase name for the platform a handle
// variant belongs to: "xlib", "xcb", "wayland", "win32", "winrt", "web",
// "android-ndk", "uikit", "appkit", or "orbital". Variants unknown to
// this version of the library report "unknown".
func PlatformName(h RawWindowHandle) string {
	switch h.(type) {
	case UIKitHandle:
		return "uikit"
	case AppKitHandle:
		return "appkit"
	case OrbitalHandle:
		return "orbital"
	case XlibHandle:
		return "xlib"
	case XcbHandle:
		return "xcb"
	case WaylandHandle:
		return "wayland"
	case Win32Handle:
		return "win32"
	case WinRTHandle:
		return "winrt"
	case WebHandle:
		return "web"
	case AndroidNDKHandle:
		return "android-ndk"
	default:
		return "unknown"
	}
}
