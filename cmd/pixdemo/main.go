// Command pixdemo exercises the pix rendering engine: it renders a demo
// scene to PNG, lists display modes, and reports CPU capabilities.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
