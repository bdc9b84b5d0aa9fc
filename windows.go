package rawhandle

import "unsafe"

// Win32Handle describes a Win32 window.
type Win32Handle struct {
	// HWND is the window handle, as returned by CreateWindowExW.
	HWND uintptr
	// HInstance is the module instance handle, as returned by
	// GetModuleHandleW (or passed to wWinMain).
	HInstance uintptr
}

func (Win32Handle) isRawWindowHandle() {}

// WinRTHandle describes a WinRT CoreWindow.
type WinRTHandle struct {
	// CoreWindow is a Windows.UI.Core.CoreWindow COM interface pointer.
	CoreWindow unsafe.Pointer
}

func (WinRTHandle) isRawWindowHandle() {}
