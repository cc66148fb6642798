package pix

import (
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/gogpu/pix/internal/lanes"
)

// Capabilities describes which lane-width acceleration paths are
// available on the running CPU. Resolved once per process.
type Capabilities struct {
	// HasWide8 reports AVX2-class 8-pixel lane support.
	HasWide8 bool

	// HasWide4 reports NEON-class 4-pixel lane support.
	HasWide4 bool

	// Lanes is the lane width of the selected strategy (1, 4, or 8).
	Lanes int

	// Strategy is the name of the selected strategy.
	Strategy string
}

var (
	opsOnce     sync.Once
	selectedOps lanes.Ops
	caps        Capabilities
)

// detect resolves CPU capabilities and selects the lane strategy.
// Wider lanes win when both capabilities are present.
func detect() {
	caps.HasWide8 = cpu.X86.HasAVX2
	caps.HasWide4 = cpu.ARM64.HasASIMD

	switch {
	case caps.HasWide8:
		selectedOps = lanes.Wide8()
	case caps.HasWide4:
		selectedOps = lanes.Wide4()
	default:
		selectedOps = lanes.Scalar()
	}
	caps.Lanes = selectedOps.Width()
	caps.Strategy = selectedOps.Name()

	Logger().Debug("pix: lane strategy selected",
		"strategy", caps.Strategy,
		"lanes", caps.Lanes,
	)
}

// ops returns the process-wide lane strategy, selecting it on first use.
func ops() lanes.Ops {
	opsOnce.Do(detect)
	return selectedOps
}

// DetectCapabilities returns the CPU capability flags and the lane
// strategy selected from them.
func DetectCapabilities() Capabilities {
	opsOnce.Do(detect)
	return caps
}
