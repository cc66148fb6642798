//go:build !linux

package display

import (
	"fmt"

	"github.com/gogpu/pix"
)

// Device is unavailable on this platform.
type Device struct{}

// Framebuffer is unavailable on this platform.
type Framebuffer struct{}

// Open always fails: direct rendering requires Linux DRM.
func Open() (*Device, error) {
	return nil, fmt.Errorf("%w: direct rendering requires Linux DRM", pix.ErrPlatformNotSupported)
}

// Path returns an empty string.
func (d *Device) Path() string { return "" }

// CanDirectRender always reports false.
func (d *Device) CanDirectRender() bool { return false }

// Close is a no-op.
func (d *Device) Close() {}

// CreateFramebuffer always fails.
func (d *Device) CreateFramebuffer(width, height int) (*Framebuffer, error) {
	return nil, pix.ErrPlatformNotSupported
}

// Modes always fails.
func (d *Device) Modes() ([]Mode, error) {
	return nil, pix.ErrPlatformNotSupported
}

// MemoryInfo reports zero values.
func (d *Device) MemoryInfo() (total, available uint64) { return 0, 0 }

// Width returns zero.
func (f *Framebuffer) Width() int { return 0 }

// Height returns zero.
func (f *Framebuffer) Height() int { return 0 }

// Stride returns zero.
func (f *Framebuffer) Stride() int { return 0 }

// Surface always fails.
func (f *Framebuffer) Surface() (*pix.Surface, error) {
	return nil, pix.ErrPlatformNotSupported
}

// AllocPixels always fails.
func (f *Framebuffer) AllocPixels(int) ([]uint32, error) {
	return nil, pix.ErrPlatformNotSupported
}

// FreePixels is a no-op.
func (f *Framebuffer) FreePixels([]uint32) {}

// Destroy is a no-op.
func (f *Framebuffer) Destroy() {}
