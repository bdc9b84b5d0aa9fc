package descriptor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"gopkg.in/yaml.v3"

	"github.com/gowindowing/rawhandle"
)

// ErrUnknownPlatform reports a descriptor whose platform tag names no
// variant known to this version of the library.
var ErrUnknownPlatform = errors.New("descriptor: unknown platform")

// HexUint is a uint64 that unmarshals from a YAML integer or from a
// decimal or 0x-prefixed string.
type HexUint uint64

func (u *HexUint) UnmarshalYAML(node *yaml.Node) error {
	var n uint64
	if err := node.Decode(&n); err == nil {
		*u = HexUint(n)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("descriptor: line %d: field must be an integer or integer string", node.Line)
	}
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return fmt.Errorf("descriptor: line %d: %q is not an integer", node.Line, s)
	}
	*u = HexUint(v)
	return nil
}

// Descriptor is one handle description. Platform selects the variant;
// the remaining fields map onto that variant's payload fields, and
// fields the variant does not have are ignored.
type Descriptor struct {
	Platform string `yaml:"platform"`

	Window         HexUint `yaml:"window,omitempty"`
	Display        HexUint `yaml:"display,omitempty"`
	Connection     HexUint `yaml:"connection,omitempty"`
	Surface        HexUint `yaml:"surface,omitempty"`
	View           HexUint `yaml:"view,omitempty"`
	ViewController HexUint `yaml:"view_controller,omitempty"`
	Instance       HexUint `yaml:"instance,omitempty"`
	CoreWindow     HexUint `yaml:"core_window,omitempty"`
	NativeWindow   HexUint `yaml:"native_window,omitempty"`
	ID             uint32  `yaml:"id,omitempty"`
}

// Handle materializes the descriptor into its variant. Pointer-typed
// payload fields receive the descriptor's raw numbers reinterpreted as
// addresses; see the package comment for why such values are
// inspection-only.
func (d *Descriptor) Handle() (rawhandle.RawWindowHandle, error) {
	switch strings.ToLower(strings.TrimSpace(d.Platform)) {
	case "uikit":
		return rawhandle.UIKitHandle{
			UIWindow:         ptr(d.Window),
			UIView:           ptr(d.View),
			UIViewController: ptr(d.ViewController),
		}, nil
	case "appkit":
		return rawhandle.AppKitHandle{
			NSWindow: ptr(d.Window),
			NSView:   ptr(d.View),
		}, nil
	case "orbital":
		return rawhandle.OrbitalHandle{Window: ptr(d.Window)}, nil
	case "xlib":
		return rawhandle.XlibHandle{
			Window:  uintptr(d.Window),
			Display: ptr(d.Display),
		}, nil
	case "xcb":
		return rawhandle.XcbHandle{
			Window:     uint32(d.Window),
			Connection: ptr(d.Connection),
		}, nil
	case "wayland":
		return rawhandle.WaylandHandle{
			Surface: ptr(d.Surface),
			Display: ptr(d.Display),
		}, nil
	case "win32":
		return rawhandle.Win32Handle{
			HWND:      uintptr(d.Window),
			HInstance: uintptr(d.Instance),
		}, nil
	case "winrt":
		return rawhandle.WinRTHandle{CoreWindow: ptr(d.CoreWindow)}, nil
	case "web":
		return rawhandle.WebHandle{ID: d.ID}, nil
	case "android-ndk", "android":
		return rawhandle.AndroidNDKHandle{ANativeWindow: ptr(d.NativeWindow)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, d.Platform)
	}
}

// ptr reinterprets a descriptor number as an address. The result does
// not point at Go memory and is never dereferenced; it only fills
// pointer-typed payload fields for inspection.
func ptr(u HexUint) unsafe.Pointer {
	return unsafe.Pointer(uintptr(u))
}

// Load decodes a YAML list of descriptors.
func Load(r io.Reader) ([]Descriptor, error) {
	var descs []Descriptor
	if err := yaml.NewDecoder(r).Decode(&descs); err != nil {
		return nil, fmt.Errorf("descriptor: decode: %w", err)
	}
	return descs, nil
}

// LoadFile decodes a YAML fixture file of descriptors.
func LoadFile(path string) ([]Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("descriptor: %w", err)
	}
	defer f.Close()
	return Load(f)
}
