package rawhandle

import "unsafe"

// XlibHandle describes an X11 window obtained through Xlib.
//
// Expected anywhere Xlib can be built, which is most (but not all) Unix
// systems.
type XlibHandle struct {
	// Window is the X11 window ID, as returned by XCreateWindow. Xlib
	// types XIDs as C unsigned long, hence the address-width field.
	Window uintptr
	// Display is the Display* returned by XOpenDisplay.
	Display unsafe.Pointer
}

func (XlibHandle) isRawWindowHandle() {}

// XcbHandle describes an X11 window obtained through XCB.
//
// Expected anywhere XCB can be built, which is most (but not all) Unix
// systems.
type XcbHandle struct {
	// Window is the X11 window ID, as returned by xcb_generate_id.
	Window uint32
	// Connection is the xcb_connection_t* returned by xcb_connect.
	Connection unsafe.Pointer
}

func (XcbHandle) isRawWindowHandle() {}

// WaylandHandle describes a Wayland surface.
//
// Expected wherever Wayland works, currently a subset of Unix systems.
type WaylandHandle struct {
	// Surface is the wl_surface* returned by wl_compositor_create_surface.
	Surface unsafe.Pointer
	// Display is the wl_display* returned by wl_display_connect.
	Display unsafe.Pointer
}

func (WaylandHandle) isRawWindowHandle() {}
