package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gowindowing/rawhandle"
	"github.com/gowindowing/rawhandle/descriptor"
)

func main() {
	var (
		descFile    = flag.String("desc", "", "Path to a YAML handle fixture file")
		target      = flag.String("target", "all", "Consumer target to classify against (linux, windows, apple, android, web, redox, all)")
		verbose     = flag.Bool("v", false, "Log handle details while classifying")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *descFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: handles -desc <fixtures.yaml> [-target linux] [-v]")
		fmt.Fprintln(os.Stderr, "       handles -desc <fixtures.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*descFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*descFile, *target, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path, target string, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}
	defer logger.Sync()

	consumer, err := consumerFor(target)
	if err != nil {
		return err
	}

	descs, err := descriptor.LoadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("Fixtures: %s (%d handles, target %s)\n\n", path, len(descs), target)
	for i := range descs {
		h, err := descs[i].Handle()
		if err != nil {
			fmt.Printf("%3d  %-12s  error: %v\n", i, descs[i].Platform, err)
			continue
		}
		logger.Debug("materialized handle", zap.Int("index", i), rawhandle.Field("handle", h))

		status := "ok"
		if err := consumer.Handle(h); err != nil {
			if !errors.Is(err, rawhandle.ErrUnsupportedPlatform) {
				return err
			}
			status = "unsupported"
		}
		fmt.Printf("%3d  %-12s  %-11s  %s\n", i, rawhandle.PlatformName(h), status, formatFields(h))
	}
	return nil
}

// consumerFor builds the dispatch table of a hypothetical consumer for
// the target: arms for the platforms it supports, fallback for the rest.
func consumerFor(target string) (rawhandle.Dispatch, error) {
	accept := func(rawhandle.RawWindowHandle) error { return nil }
	reject := func(h rawhandle.RawWindowHandle) error {
		return fmt.Errorf("%w: %s", rawhandle.ErrUnsupportedPlatform, rawhandle.PlatformName(h))
	}

	d := rawhandle.Dispatch{Fallback: reject}
	switch target {
	case "linux":
		d.Xlib = func(h rawhandle.XlibHandle) error { return accept(h) }
		d.Xcb = func(h rawhandle.XcbHandle) error { return accept(h) }
		d.Wayland = func(h rawhandle.WaylandHandle) error { return accept(h) }
	case "windows":
		d.Win32 = func(h rawhandle.Win32Handle) error { return accept(h) }
		d.WinRT = func(h rawhandle.WinRTHandle) error { return accept(h) }
	case "apple":
		d.AppKit = func(h rawhandle.AppKitHandle) error { return accept(h) }
		d.UIKit = func(h rawhandle.UIKitHandle) error { return accept(h) }
	case "android":
		d.AndroidNDK = func(h rawhandle.AndroidNDKHandle) error { return accept(h) }
	case "web":
		d.Web = func(h rawhandle.WebHandle) error { return accept(h) }
	case "redox":
		d.Orbital = func(h rawhandle.OrbitalHandle) error { return accept(h) }
	case "all":
		d.Fallback = accept
	default:
		return rawhandle.Dispatch{}, fmt.Errorf("unknown target %q", target)
	}
	return d, nil
}

func ptrVal(p unsafe.Pointer) uint64 {
	return uint64(uintptr(p))
}

type fieldRow struct {
	name  string
	value uint64
}

func (r fieldRow) set() bool { return r.value != 0 }

// fieldRows flattens a handle's payload for display. Values are shown
// as raw numbers whatever their native width.
func fieldRows(h rawhandle.RawWindowHandle) []fieldRow {
	switch v := h.(type) {
	case rawhandle.UIKitHandle:
		return []fieldRow{
			{"ui_window", ptrVal(v.UIWindow)},
			{"ui_view", ptrVal(v.UIView)},
			{"ui_view_controller", ptrVal(v.UIViewController)},
		}
	case rawhandle.AppKitHandle:
		return []fieldRow{
			{"ns_window", ptrVal(v.NSWindow)},
			{"ns_view", ptrVal(v.NSView)},
		}
	case rawhandle.OrbitalHandle:
		return []fieldRow{{"window", ptrVal(v.Window)}}
	case rawhandle.XlibHandle:
		return []fieldRow{
			{"window", uint64(v.Window)},
			{"display", ptrVal(v.Display)},
		}
	case rawhandle.XcbHandle:
		return []fieldRow{
			{"window", uint64(v.Window)},
			{"connection", ptrVal(v.Connection)},
		}
	case rawhandle.WaylandHandle:
		return []fieldRow{
			{"surface", ptrVal(v.Surface)},
			{"display", ptrVal(v.Display)},
		}
	case rawhandle.Win32Handle:
		return []fieldRow{
			{"hwnd", uint64(v.HWND)},
			{"hinstance", uint64(v.HInstance)},
		}
	case rawhandle.WinRTHandle:
		return []fieldRow{{"core_window", ptrVal(v.CoreWindow)}}
	case rawhandle.WebHandle:
		return []fieldRow{{"id", uint64(v.ID)}}
	case rawhandle.AndroidNDKHandle:
		return []fieldRow{{"a_native_window", ptrVal(v.ANativeWindow)}}
	}
	return nil
}

func formatFields(h rawhandle.RawWindowHandle) string {
	rows := fieldRows(h)
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.set() {
			parts = append(parts, fmt.Sprintf("%s=%#x", r.name, r.value))
		} else {
			parts = append(parts, r.name+"=<empty>")
		}
	}
	return strings.Join(parts, " ")
}
