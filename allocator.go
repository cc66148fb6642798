package pix

// Allocator provides pixel buffer storage for surfaces. It is an external
// collaborator: surface creation accepts an optional allocator, and the
// surface releases its buffer through the same allocator on Destroy.
//
// The display package's Framebuffer satisfies this interface with
// mmap-backed hardware memory.
type Allocator interface {
	// AllocPixels returns a buffer of at least n packed 32-bit pixels,
	// or an error if the allocation cannot be satisfied.
	AllocPixels(n int) ([]uint32, error)

	// FreePixels releases a buffer previously returned by AllocPixels.
	FreePixels(pix []uint32)
}

// sysAllocator is the default allocator backed by the Go runtime.
type sysAllocator struct{}

func (sysAllocator) AllocPixels(n int) ([]uint32, error) {
	return make([]uint32, n), nil
}

func (sysAllocator) FreePixels([]uint32) {
	// Garbage collected.
}
