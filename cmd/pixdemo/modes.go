package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/pix/display"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List display modes of connected connectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := display.Open()
		if err != nil {
			return err
		}
		defer dev.Close()

		modes, err := dev.Modes()
		if err != nil {
			return err
		}
		if len(modes) == 0 {
			fmt.Println("no connected displays")
			return nil
		}
		for _, m := range modes {
			fmt.Printf("%-16s %4dx%-4d @ %d Hz\n", m.Name, m.Width, m.Height, m.RefreshRate)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
