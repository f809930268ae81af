// Package demo draws the built-in landscape used by "Try Demo". It is
// deliberately saturated so every color-vision profile changes it visibly.
package demo

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
)

const (
	Width  = 800
	Height = 600
)

var (
	leafColors   = []string{"#FF6347", "#FFD700", "#32CD32", "#FF4500", "#FF69B4"}
	flowerColors = []string{"#FF0000", "#FF69B4", "#FFD700", "#00FF00", "#FF4500", "#FF1493"}
)

// Landscape renders the demo image.
func Landscape() (*image.RGBA, error) {
	dc := gg.NewContext(Width, Height)
	defer func() { _ = dc.Close() }()

	steps := []func(*gg.Context) error{sky, sun, mountains, trees, flowers, clouds, lake}
	for _, step := range steps {
		if err := step(dc); err != nil {
			return nil, fmt.Errorf("demo: %w", err)
		}
	}

	src := dc.Image()
	out := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(out, out.Rect, src, src.Bounds().Min, draw.Src)
	return out, nil
}

func sky(dc *gg.Context) error {
	dc.SetFillBrush(gg.NewLinearGradientBrush(0, 0, 0, Height).
		AddColorStop(0, gg.Hex("#FF6B6B")).
		AddColorStop(0.3, gg.Hex("#4ECDC4")).
		AddColorStop(0.6, gg.Hex("#45B7D1")).
		AddColorStop(1, gg.Hex("#96CEB4")))
	dc.DrawRectangle(0, 0, Width, Height)
	return dc.Fill()
}

func sun(dc *gg.Context) error {
	dc.SetHexColor("#FFD700")
	dc.DrawCircle(700, 100, 50)
	return dc.Fill()
}

func mountains(dc *gg.Context) error {
	ranges := []struct {
		color  string
		points [][2]float64
	}{
		{"#6A5ACD", [][2]float64{{0, 400}, {200, 200}, {400, 300}, {600, 150}, {800, 250}, {800, 600}}},
		{"#9370DB", [][2]float64{{0, 450}, {150, 250}, {300, 350}, {500, 200}, {800, 300}, {800, 600}}},
	}
	for _, r := range ranges {
		dc.SetHexColor(r.color)
		dc.MoveTo(r.points[0][0], r.points[0][1])
		for _, p := range r.points[1:] {
			dc.LineTo(p[0], p[1])
		}
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func trees(dc *gg.Context) error {
	for i := 0; i < 12; i++ {
		x := 50 + float64(i)*70
		y := 450 + math.Sin(float64(i))*20

		dc.SetHexColor("#8B4513")
		dc.DrawRectangle(x-5, y, 10, 60)
		if err := dc.Fill(); err != nil {
			return err
		}

		dc.SetHexColor(leafColors[i%len(leafColors)])
		dc.DrawCircle(x, y-20, 30)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func flowers(dc *gg.Context) error {
	for i := 0; i < 20; i++ {
		x := 100 + float64(i)*40
		y := 520 + math.Sin(float64(i)*0.5)*30
		dc.SetHexColor(flowerColors[i%len(flowerColors)])
		dc.DrawCircle(x, y, 8)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func clouds(dc *gg.Context) error {
	dc.SetHexColor("#FFFFFF")
	for i := 0; i < 5; i++ {
		x := 100 + float64(i)*150
		y := 80 + math.Sin(float64(i))*20
		dc.DrawCircle(x, y, 25)
		dc.DrawCircle(x+25, y, 20)
		dc.DrawCircle(x+50, y, 25)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func lake(dc *gg.Context) error {
	dc.SetRGBA(70.0/255, 130.0/255, 180.0/255, 0.6)
	dc.DrawRectangle(0, 550, Width, 50)
	return dc.Fill()
}
