package rawhandle

import (
	"fmt"
	"testing"
	"unsafe"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFieldMarshalsPlatformAndPayload(t *testing.T) {
	var backing int
	conn := unsafe.Pointer(&backing)

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	logger.Info("handle", Field("handle", XcbHandle{Window: 912, Connection: conn}))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	obj, ok := entries[0].ContextMap()["handle"].(map[string]any)
	if !ok {
		t.Fatalf("handle field is %T, want object", entries[0].ContextMap()["handle"])
	}
	if obj["platform"] != "xcb" {
		t.Errorf("platform = %v, want xcb", obj["platform"])
	}
	if obj["window"] != uint32(912) {
		t.Errorf("window = %v, want 912", obj["window"])
	}
	if want := fmt.Sprintf("0x%x", uintptr(conn)); obj["connection"] != want {
		t.Errorf("connection = %v, want %s", obj["connection"], want)
	}
}

func TestFieldMarshalsUnknownVariant(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	zap.New(core).Info("handle", Field("handle", futureHandle{}))

	obj, ok := logs.All()[0].ContextMap()["handle"].(map[string]any)
	if !ok {
		t.Fatal("handle field missing")
	}
	if obj["platform"] != "unknown" {
		t.Errorf("platform = %v, want unknown", obj["platform"])
	}
}

func TestEveryPayloadIsObjectMarshaler(t *testing.T) {
	for _, h := range payloadZeroValues {
		if _, ok := h.(zapcore.ObjectMarshaler); !ok {
			t.Errorf("%T does not implement zapcore.ObjectMarshaler", h)
		}
	}
}
