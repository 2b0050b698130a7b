// @focus: #terminal { ansi }
package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations per frame)
var (
	csiClear = []byte("\x1b[2J\x1b[H")
	csiHome  = []byte("\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping, preventing scroll when a full-width row is written on the last line
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)
