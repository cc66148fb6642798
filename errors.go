package pix

import "errors"

// Errors returned by pix operations. Every fallible operation reports one
// of these sentinels, possibly wrapped with additional context; callers
// should test with errors.Is.
var (
	// ErrInvalidParam indicates a nil surface, negative radius or
	// thickness, zero-or-negative dimensions, or a similarly malformed
	// argument.
	ErrInvalidParam = errors.New("pix: invalid parameter")

	// ErrOutOfMemory indicates a pixel buffer allocation failure.
	ErrOutOfMemory = errors.New("pix: out of memory")

	// ErrPlatformNotSupported indicates that the display backend is
	// unavailable on this platform, or that a capability-gated operation
	// was attempted without the capability.
	ErrPlatformNotSupported = errors.New("pix: platform not supported")
)
