package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/pix"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:     "pixdemo",
	Short:   "Software 2D rendering engine demo",
	Version: pix.Version,
	Long: `
pixdemo exercises the pix rendering engine: rasterization primitives,
color math, compositing, lane-parallel acceleration, and the DRM display
backend.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var level slog.Level
		switch logLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		pix.SetLogger(slog.New(handler))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
