package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/blend"
)

var (
	demoWidth  int
	demoHeight int
	demoOut    string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a demo scene to PNG",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoWidth, "width", 800, "image width")
	demoCmd.Flags().IntVar(&demoHeight, "height", 600, "image height")
	demoCmd.Flags().StringVar(&demoOut, "out", "demo.png", "output file")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	s, err := pix.New(demoWidth, demoHeight)
	if err != nil {
		return err
	}
	defer s.Destroy()

	s.Clear(pix.RGB(24, 24, 32))

	// Line fan, exact and anti-aliased.
	cx, cy := demoWidth/4, demoHeight/2
	for i := 0; i < 12; i++ {
		angle := float64(i) * math.Pi / 12
		x := cx + int(120*math.Cos(angle))
		y := cy + int(120*math.Sin(angle))
		if err := s.DrawLine(cx, cy, x, y, pix.RGB(90, 200, 250)); err != nil {
			return err
		}
		if err := s.DrawLineAA(float64(cx), float64(cy),
			float64(x), float64(y)-140, pix.RGB(250, 200, 90)); err != nil {
			return err
		}
	}

	// Circles, ellipse, arc.
	ccx := demoWidth * 3 / 4
	if err := s.DrawCircleFilled(ccx, demoHeight/3, 80, pix.RGBA(200, 40, 40, 255)); err != nil {
		return err
	}
	if err := s.DrawCircleOutlineAA(ccx, demoHeight/3, 95, pix.White); err != nil {
		return err
	}
	if err := s.DrawEllipseOutline(ccx, demoHeight*2/3, 100, 45, pix.RGB(120, 250, 120)); err != nil {
		return err
	}
	if err := s.DrawArc(ccx, demoHeight*2/3, 70, 0, math.Pi, pix.RGB(250, 120, 250)); err != nil {
		return err
	}

	// Filled polygon with translucent overlay rect.
	star := []pix.Point{
		{X: 120, Y: demoHeight - 160}, {X: 150, Y: demoHeight - 90},
		{X: 230, Y: demoHeight - 90}, {X: 165, Y: demoHeight - 45},
		{X: 190, Y: demoHeight - 160 + 130}, {X: 120, Y: demoHeight - 60},
		{X: 50, Y: demoHeight - 160 + 130}, {X: 75, Y: demoHeight - 45},
		{X: 10, Y: demoHeight - 90}, {X: 90, Y: demoHeight - 90},
	}
	if err := s.FillPolygon(star, pix.RGB(250, 220, 60)); err != nil {
		return err
	}
	if err := s.CompositeRect(pix.Rc(40, demoHeight-180, 220, 160),
		pix.RGBA(60, 60, 250, 110), blend.Alpha); err != nil {
		return err
	}

	if err := s.DrawText(16, 16, "pix demo", pix.White); err != nil {
		return err
	}

	if err := s.SavePNG(demoOut); err != nil {
		return err
	}
	fmt.Printf("demo saved to %s (%dx%d)\n", demoOut, demoWidth, demoHeight)
	return nil
}
