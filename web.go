package rawhandle

// WebHandle describes a canvas element on a Web page. Used on wasm and
// asm.js targets running in a browser.
type WebHandle struct {
	// ID is the numeric value of the canvas element's
	// `data-raw-handle` attribute. Zero is reserved and means the
	// producer did not register a canvas.
	ID uint32
}

func (WebHandle) isRawWindowHandle() {}
