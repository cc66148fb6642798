// Package display provides a direct-rendering backend on top of the
// Linux DRM (Direct Rendering Manager) subsystem. It opens a DRM device,
// allocates dumb buffers sized for 32-bit pixels, and maps them into
// process memory so a pix.Surface can draw straight into display memory.
//
// Direct rendering is an optional accelerated path: callers should treat
// every failure here as a signal to fall back to offscreen rendering,
// which is why device and allocation failures surface as
// pix.ErrPlatformNotSupported rather than distinguishing each underlying
// system call error.
//
// On platforms without DRM, Open always returns
// pix.ErrPlatformNotSupported.
package display

// Mode describes one display mode advertised by a connected connector.
type Mode struct {
	Width       int
	Height      int
	RefreshRate int
	Name        string
}

// devicePaths is the fixed probe order for DRM device nodes. The first
// path that opens successfully is used; no configuration override is
// exposed.
var devicePaths = []string{
	"/dev/dri/card0",
	"/dev/dri/card1",
	"/dev/dri/renderD128",
	"/dev/dri/renderD129",
}
