package rawhandle

import "unsafe"

// AppKitHandle describes an AppKit window.
//
// Expected on macOS. Mac Catalyst applications can use AppKit or UIKit,
// so either this or UIKitHandle may show up there.
type AppKitHandle struct {
	// NSWindow is a pointer to the window's NSWindow instance.
	NSWindow unsafe.Pointer
	// NSView is a pointer to the window's content NSView.
	NSView unsafe.Pointer
}

func (AppKitHandle) isRawWindowHandle() {}
