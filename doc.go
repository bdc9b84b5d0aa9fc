// Package rawhandle provides interoperability types for Go windowing
// applications.
//
// This library defines standard types for exposing a window's
// platform-specific raw handle. It does not create or manage windows;
// instead it provides the common vocabulary a window-creation library
// (the producer) and a graphics library (the consumer) can use to talk
// to each other without depending on each other.
//
// # Architecture Overview
//
// The module is organized into a small core plus tooling:
//
//	rawhandle/           Core contract: payloads, union, provider, trusted wrapper
//	├── descriptor/      YAML handle descriptions for fixtures and tooling
//	├── handletest/      Conformance helpers for provider implementations
//	├── cmd/handles/     Handle inspector (batch and interactive modes)
//	└── examples/x11/    Producer example over a real X11 connection
//
// # Payload Construction
//
// Every payload struct's zero value is its documented "empty" form: each
// field holds the reserved not-a-handle sentinel (zero / nil). Construct
// payloads with named-field composite literals over the zero value,
// setting only the fields you can actually supply:
//
//	h := rawhandle.XlibHandle{
//	    Display: display, // from XOpenDisplay
//	    Window:  uintptr(window),
//	}
//
// Never use positional literals: payload structs grow new fields over
// time, and named-field construction is what keeps that growth from
// breaking existing call sites. Fields left unset signal "not available"
// to the consumer.
//
// # Trust Model
//
// The type system cannot verify that a numeric field refers to a live OS
// window, so validity is a contract, not a check. A type asserts that
// contract by implementing [WindowHandleProvider]; a raw value is
// asserted directly with [TrustRawWindowHandle]. Both assertion points
// are documented in detail on their declarations, and both are meant to
// be greppable during review: every place trust enters the program is a
// call to one of them.
//
// # Forward Compatibility
//
// [RawWindowHandle] is a closed union today and an open one tomorrow:
// new platforms are added without a major version bump. Consumer code
// that switches on the concrete type must always carry a default arm
// treating the value as an unsupported platform; [Dispatch] bakes that
// rule into an API.
//
// # Resource Ownership
//
// Handle values are descriptors, never owners. The window, display, or
// surface a field refers to is owned by the operating system and managed
// by the producing windowing library; holding a payload value keeps
// nothing alive and cleans nothing up. There are no destructors here and
// there never will be.
//
// # Thread Safety
//
// All types in this package are plain immutable values. They may be
// copied and read concurrently from any number of goroutines without
// synchronization.
package rawhandle
