package rawhandle

import "unsafe"

// OrbitalHandle describes a window in the Orbital windowing system on
// Redox OS.
type OrbitalHandle struct {
	// Window is a pointer to the orbclient window.
	Window unsafe.Pointer
}

func (OrbitalHandle) isRawWindowHandle() {}
