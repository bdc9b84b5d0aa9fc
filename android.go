package rawhandle

import "unsafe"

// AndroidNDKHandle describes an Android NDK window.
type AndroidNDKHandle struct {
	// ANativeWindow is the ANativeWindow* obtained from a Java Surface
	// via ANativeWindow_fromSurface. Subject to recreation whenever the
	// platform recreates the surface; providers must return the current
	// one.
	ANativeWindow unsafe.Pointer
}

func (AndroidNDKHandle) isRawWindowHandle() {}
