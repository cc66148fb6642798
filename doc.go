// Package pix provides a software 2D rendering engine for Go.
//
// # Overview
//
// pix is a pure Go pixel rasterization library. It owns a packed 32-bit
// ARGB pixel surface and draws into it with integer-exact and anti-aliased
// primitives: lines (Bresenham, Wu, thick, clipped), circles, ellipses,
// arcs, and polygons. Color space conversion, gamma correction, and alpha
// compositing live in dedicated subpackages.
//
// # Quick Start
//
//	import "github.com/gogpu/pix"
//
//	s, err := pix.New(512, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Destroy()
//
//	s.Clear(pix.RGB(255, 255, 255))
//	s.DrawCircleFilled(256, 256, 100, pix.RGB(200, 30, 30))
//	s.SavePNG("output.png")
//
// # Acceleration
//
// The hottest operations (clear, span fill, alpha blend, tint, grayscale)
// run through a lane-parallel strategy selected once per process from the
// CPU's capabilities: 8-wide lanes on AVX2-class hardware, 4-wide on
// NEON-class hardware, scalar otherwise. Selection is transparent to
// callers.
//
// # Direct Rendering
//
// The display subpackage opens a DRM device and allocates mapped hardware
// framebuffers. A framebuffer satisfies the Allocator contract, so a
// Surface can draw straight into display memory:
//
//	dev, err := display.Open()
//	fb, err := dev.CreateFramebuffer(1920, 1080)
//	s, err := pix.NewWithAllocator(1920, 1080, fb)
//
// # Concurrency
//
// The engine is single-threaded by contract. Surfaces are not internally
// synchronized; callers rendering from multiple goroutines must serialize
// access per surface.
package pix

// Version is the library version.
const Version = "0.1.0"
