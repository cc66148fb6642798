//go:build !linux

package display

import (
	"errors"
	"testing"

	"github.com/gogpu/pix"
)

func TestOpenUnsupportedPlatform(t *testing.T) {
	if _, err := Open(); !errors.Is(err, pix.ErrPlatformNotSupported) {
		t.Errorf("Open = %v, want ErrPlatformNotSupported", err)
	}
}

func TestStubDeviceOperations(t *testing.T) {
	var d Device
	if _, err := d.CreateFramebuffer(640, 480); !errors.Is(err, pix.ErrPlatformNotSupported) {
		t.Errorf("CreateFramebuffer = %v, want ErrPlatformNotSupported", err)
	}
	if _, err := d.Modes(); !errors.Is(err, pix.ErrPlatformNotSupported) {
		t.Errorf("Modes = %v, want ErrPlatformNotSupported", err)
	}
	if d.CanDirectRender() {
		t.Error("stub device claims direct rendering")
	}
	if total, avail := d.MemoryInfo(); total != 0 || avail != 0 {
		t.Errorf("MemoryInfo = %d/%d, want zeros", total, avail)
	}
	d.Close()
}
