package rawhandle

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Structured logging support. The library never logs on its own, but
// handle values come up constantly in producer and consumer diagnostics,
// so every payload is a zapcore.ObjectMarshaler. Pointer-width fields
// are rendered as hex strings; numeric IDs as integers.

// Field returns a zap field carrying h with its platform name and
// payload fields:
//
//	logger.Info("surface created", rawhandle.Field("handle", h))
func Field(key string, h RawWindowHandle) zap.Field {
	return zap.Object(key, taggedHandle{h})
}

type taggedHandle struct {
	raw RawWindowHandle
}

func (t taggedHandle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("platform", PlatformName(t.raw))
	if m, ok := t.raw.(zapcore.ObjectMarshaler); ok {
		return m.MarshalLogObject(enc)
	}
	return nil
}

func addPtr(enc zapcore.ObjectEncoder, key string, p unsafe.Pointer) {
	enc.AddString(key, fmt.Sprintf("0x%x", uintptr(p)))
}

func (h XlibHandle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("window", uint64(h.Window))
	addPtr(enc, "display", h.Display)
	return nil
}

func (h XcbHandle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("window", h.Window)
	addPtr(enc, "connection", h.Connection)
	return nil
}

func (h WaylandHandle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	addPtr(enc, "surface", h.Surface)
	addPtr(enc, "display", h.Display)
	return nil
}

func (h Win32Handle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("hwnd", fmt.Sprintf("0x%x", h.HWND))
	enc.AddString("hinstance", fmt.Sprintf("0x%x", h.HInstance))
	return nil
}

func (h WinRTHandle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	addPtr(enc, "core_window", h.CoreWindow)
	return nil
}

func (h WebHandle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("id", h.ID)
	return nil
}

func (h AndroidNDKHandle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	addPtr(enc, "a_native_window", h.ANativeWindow)
	return nil
}

func (h UIKitHandle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	addPtr(enc, "ui_window", h.UIWindow)
	addPtr(enc, "ui_view", h.UIView)
	addPtr(enc, "ui_view_controller", h.UIViewController)
	return nil
}

func (h AppKitHandle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	addPtr(enc, "ns_window", h.NSWindow)
	addPtr(enc, "ns_view", h.NSView)
	return nil
}

func (h OrbitalHandle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	addPtr(enc, "window", h.Window)
	return nil
}
