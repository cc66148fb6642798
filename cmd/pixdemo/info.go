package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/display"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print CPU capabilities and the selected lane strategy",
	Run: func(cmd *cobra.Command, args []string) {
		caps := pix.DetectCapabilities()
		fmt.Printf("wide8 (AVX2-class): %v\n", caps.HasWide8)
		fmt.Printf("wide4 (NEON-class): %v\n", caps.HasWide4)
		fmt.Printf("selected strategy:  %s (%d lanes)\n", caps.Strategy, caps.Lanes)

		dev, err := display.Open()
		if err != nil {
			fmt.Printf("direct rendering:   unavailable (%v)\n", err)
			return
		}
		defer dev.Close()
		fmt.Printf("DRM device:         %s\n", dev.Path())
		fmt.Printf("direct rendering:   %v\n", dev.CanDirectRender())
		total, avail := dev.MemoryInfo()
		fmt.Printf("video memory:       %d total, %d available\n", total, avail)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
