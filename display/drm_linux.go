//go:build linux

package display

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/gogpu/pix"
)

// DRM ioctl request numbers, built from the 'd' ioctl type the way
// drm.h's _IO/_IOWR macros do.
const (
	drmIoctlType = 0x64 // 'd'

	iocWrite = 1
	iocRead  = 2
)

func drmIO(nr uintptr) uintptr {
	return drmIoctlType<<8 | nr
}

func drmIOWR(nr, size uintptr) uintptr {
	return (iocRead|iocWrite)<<30 | size<<16 | drmIoctlType<<8 | nr
}

var (
	ioctlSetMaster   = drmIO(0x1e)
	ioctlDropMaster  = drmIO(0x1f)
	ioctlGetRes      = drmIOWR(0xa0, unsafe.Sizeof(drmModeCardRes{}))
	ioctlGetConn     = drmIOWR(0xa7, unsafe.Sizeof(drmModeGetConnector{}))
	ioctlCreateDumb  = drmIOWR(0xb2, unsafe.Sizeof(drmModeCreateDumb{}))
	ioctlMapDumb     = drmIOWR(0xb3, unsafe.Sizeof(drmModeMapDumb{}))
	ioctlDestroyDumb = drmIOWR(0xb4, unsafe.Sizeof(drmModeDestroyDumb{}))
)

// Kernel ABI structs from drm_mode.h. Field order and sizes are fixed by
// the kernel; do not reorder.

type drmModeCreateDumb struct {
	height uint32
	width  uint32
	bpp    uint32
	flags  uint32
	handle uint32
	pitch  uint32
	size   uint64
}

type drmModeMapDumb struct {
	handle uint32
	pad    uint32
	offset uint64
}

type drmModeDestroyDumb struct {
	handle uint32
}

type drmModeCardRes struct {
	fbIDPtr         uint64
	crtcIDPtr       uint64
	connectorIDPtr  uint64
	encoderIDPtr    uint64
	countFBs        uint32
	countCRTCs      uint32
	countConnectors uint32
	countEncoders   uint32
	minWidth        uint32
	maxWidth        uint32
	minHeight       uint32
	maxHeight       uint32
}

type drmModeInfo struct {
	clock      uint32
	hdisplay   uint16
	hsyncStart uint16
	hsyncEnd   uint16
	htotal     uint16
	hskew      uint16
	vdisplay   uint16
	vsyncStart uint16
	vsyncEnd   uint16
	vtotal     uint16
	vscan      uint16
	vrefresh   uint32
	flags      uint32
	typ        uint32
	name       [32]byte
}

type drmModeGetConnector struct {
	encodersPtr     uint64
	modesPtr        uint64
	propsPtr        uint64
	propValuesPtr   uint64
	countModes      uint32
	countProps      uint32
	countEncoders   uint32
	encoderID       uint32
	connectorID     uint32
	connectorType   uint32
	connectorTypeID uint32
	connection      uint32
	mmWidth         uint32
	mmHeight        uint32
	subpixel        uint32
	pad             uint32
}

const drmModeConnected = 1

// clampLen bounds a kernel-reported element count to the array length
// that was actually passed in. The kernel fills at most the passed
// capacity but writes back the true total, which can be larger if
// connectors appear between the two enumeration calls.
func clampLen(count uint32, n int) int {
	if int(count) < n {
		return int(count)
	}
	return n
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Device is an open DRM device. It is the alternate pixel-buffer
// provider for the Surface contract: framebuffers created from it are
// hardware allocations mapped into process memory.
type Device struct {
	fd       int
	path     string
	isMaster bool
}

// Open probes the known DRM device paths in order and opens the first
// that succeeds. It then attempts to acquire exclusive display control;
// failure to acquire control is non-fatal and only disables
// direct-render eligibility.
func Open() (*Device, error) {
	for _, path := range devicePaths {
		fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
		if err != nil {
			continue
		}

		d := &Device{fd: fd, path: path}
		d.isMaster = ioctl(fd, ioctlSetMaster, nil) == nil

		pix.Logger().Info("display: DRM device opened",
			"path", path,
			"master", d.isMaster,
		)
		return d, nil
	}
	return nil, fmt.Errorf("%w: no DRM device available", pix.ErrPlatformNotSupported)
}

// Path returns the device node path that was opened.
func (d *Device) Path() string { return d.path }

// CanDirectRender reports whether the device holds exclusive display
// control and may scan out directly.
func (d *Device) CanDirectRender() bool { return d.isMaster }

// Close releases exclusive display control if held, then closes the
// device. Framebuffers must be destroyed first.
func (d *Device) Close() {
	if d == nil || d.fd < 0 {
		return
	}
	if d.isMaster {
		if err := ioctl(d.fd, ioctlDropMaster, nil); err != nil {
			pix.Logger().Warn("display: drop master failed", "error", err)
		}
	}
	_ = unix.Close(d.fd)
	d.fd = -1
}

// Framebuffer is a hardware-backed dumb buffer mapped into process
// memory. It satisfies the pix.Allocator contract, so a Surface can be
// created directly on top of the mapping.
type Framebuffer struct {
	dev    *Device
	handle uint32
	pitch  uint32 // bytes per row
	size   uint64
	mapped []byte
	pixels []uint32
	width  int
	height int
}

// CreateFramebuffer allocates a dumb buffer sized for 32-bit pixels and
// maps it into process memory.
func (d *Device) CreateFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: framebuffer dimensions %dx%d", pix.ErrInvalidParam, width, height)
	}

	create := drmModeCreateDumb{
		width:  uint32(width),
		height: uint32(height),
		bpp:    32,
	}
	if err := ioctl(d.fd, ioctlCreateDumb, unsafe.Pointer(&create)); err != nil {
		return nil, fmt.Errorf("%w: create dumb buffer: %v", pix.ErrPlatformNotSupported, err)
	}

	mapReq := drmModeMapDumb{handle: create.handle}
	if err := ioctl(d.fd, ioctlMapDumb, unsafe.Pointer(&mapReq)); err != nil {
		d.destroyDumb(create.handle)
		return nil, fmt.Errorf("%w: map dumb buffer: %v", pix.ErrPlatformNotSupported, err)
	}

	mapped, err := unix.Mmap(d.fd, int64(mapReq.offset), int(create.size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		d.destroyDumb(create.handle)
		return nil, fmt.Errorf("%w: mmap framebuffer: %v", pix.ErrOutOfMemory, err)
	}

	fb := &Framebuffer{
		dev:    d,
		handle: create.handle,
		pitch:  create.pitch,
		size:   create.size,
		mapped: mapped,
		pixels: unsafe.Slice((*uint32)(unsafe.Pointer(&mapped[0])), len(mapped)/4),
		width:  width,
		height: height,
	}

	pix.Logger().Debug("display: framebuffer created",
		"width", width,
		"height", height,
		"pitch", create.pitch,
		"size", create.size,
	)
	return fb, nil
}

func (d *Device) destroyDumb(handle uint32) {
	destroy := drmModeDestroyDumb{handle: handle}
	if err := ioctl(d.fd, ioctlDestroyDumb, unsafe.Pointer(&destroy)); err != nil {
		pix.Logger().Warn("display: destroy dumb buffer failed", "error", err)
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Stride returns the row stride in pixels (pitch / 4).
func (f *Framebuffer) Stride() int { return int(f.pitch / 4) }

// Surface wraps the mapped framebuffer memory in a pix.Surface with the
// hardware row stride. The framebuffer keeps ownership; destroying the
// surface does not release the mapping.
func (f *Framebuffer) Surface() (*pix.Surface, error) {
	return pix.NewFromBuffer(f.pixels, f.width, f.height, f.Stride())
}

// AllocPixels satisfies the pix.Allocator contract with the mapped
// hardware memory. The framebuffer can back exactly one surface of its
// own geometry; requests that do not fit are rejected.
func (f *Framebuffer) AllocPixels(n int) ([]uint32, error) {
	if n > len(f.pixels) {
		return nil, fmt.Errorf("%w: framebuffer holds %d pixels, requested %d",
			pix.ErrOutOfMemory, len(f.pixels), n)
	}
	return f.pixels, nil
}

// FreePixels satisfies the pix.Allocator contract. The mapping is
// released by Destroy, not here.
func (f *Framebuffer) FreePixels([]uint32) {}

// Destroy unmaps the buffer and then releases the hardware allocation.
// The order is fixed: unmapping first prevents any use-after-unmap
// window against the released handle.
func (f *Framebuffer) Destroy() {
	if f == nil || f.mapped == nil {
		return
	}
	if err := unix.Munmap(f.mapped); err != nil {
		pix.Logger().Warn("display: munmap failed", "error", err)
	}
	f.mapped = nil
	f.pixels = nil
	f.dev.destroyDumb(f.handle)
	f.handle = 0
}

// Modes enumerates the display modes of every connected connector.
func (d *Device) Modes() ([]Mode, error) {
	// First call with zero counts to learn the array sizes, second call
	// with allocated arrays. The kernel may change counts between the
	// two calls; the reported counts from the second call win.
	var res drmModeCardRes
	if err := ioctl(d.fd, ioctlGetRes, unsafe.Pointer(&res)); err != nil {
		return nil, fmt.Errorf("%w: get resources: %v", pix.ErrPlatformNotSupported, err)
	}
	if res.countConnectors == 0 {
		return nil, nil
	}

	connectors := make([]uint32, res.countConnectors)
	res.fbIDPtr = 0
	res.crtcIDPtr = 0
	res.encoderIDPtr = 0
	res.countFBs = 0
	res.countCRTCs = 0
	res.countEncoders = 0
	res.connectorIDPtr = uint64(uintptr(unsafe.Pointer(&connectors[0])))
	if err := ioctl(d.fd, ioctlGetRes, unsafe.Pointer(&res)); err != nil {
		return nil, fmt.Errorf("%w: get resources: %v", pix.ErrPlatformNotSupported, err)
	}

	var modes []Mode
	for _, id := range connectors[:clampLen(res.countConnectors, len(connectors))] {
		conn := drmModeGetConnector{connectorID: id}
		if err := ioctl(d.fd, ioctlGetConn, unsafe.Pointer(&conn)); err != nil {
			continue
		}
		if conn.connection != drmModeConnected || conn.countModes == 0 {
			continue
		}

		infos := make([]drmModeInfo, conn.countModes)
		conn = drmModeGetConnector{
			connectorID: id,
			countModes:  uint32(len(infos)),
			modesPtr:    uint64(uintptr(unsafe.Pointer(&infos[0]))),
		}
		if err := ioctl(d.fd, ioctlGetConn, unsafe.Pointer(&conn)); err != nil {
			continue
		}

		for _, mi := range infos[:clampLen(conn.countModes, len(infos))] {
			name := string(mi.name[:])
			if i := strings.IndexByte(name, 0); i >= 0 {
				name = name[:i]
			}
			modes = append(modes, Mode{
				Width:       int(mi.hdisplay),
				Height:      int(mi.vdisplay),
				RefreshRate: int(mi.vrefresh),
				Name:        name,
			})
		}
	}
	return modes, nil
}

// MemoryInfo reports total and available video memory in bytes,
// best-effort from the sysfs introspection files of the opened node.
// Absence of the files is not an error; it yields zero-valued results.
func (d *Device) MemoryInfo() (total, available uint64) {
	dir := sysfsDeviceDir(d.path)
	total = readSysfsUint(filepath.Join(dir, "mem_info_vram_total"))
	used := readSysfsUint(filepath.Join(dir, "mem_info_vram_used"))
	if total >= used {
		available = total - used
	}
	return total, available
}

// sysfsDeviceDir maps a DRM device node to its sysfs device directory,
// e.g. /dev/dri/card1 to /sys/class/drm/card1/device.
func sysfsDeviceDir(devicePath string) string {
	return filepath.Join("/sys/class/drm", filepath.Base(devicePath), "device")
}

func readSysfsUint(path string) uint64 {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
