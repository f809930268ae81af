// Package layout computes where the render surface sits inside its container.
package layout

import (
	"image"
	"math"
)

// Bounds is a screen-space rectangle in logical pixels.
type Bounds struct {
	Left, Top, Width, Height float64
}

// Right returns Left + Width.
func (b Bounds) Right() float64 { return b.Left + b.Width }

// Contains reports whether (x, y) lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Left+b.Width && y >= b.Top && y <= b.Top+b.Height
}

// FitRules selects how much of the container the surface may fill.
type FitRules struct {
	MobileBreakpoint int
	MobileFill       float64
	DesktopFill      float64
}

// FillFraction returns the fill fraction for a viewport width. Viewports at or
// below the breakpoint count as mobile-class.
func (r FitRules) FillFraction(viewportWidth float64) float64 {
	if viewportWidth <= float64(r.MobileBreakpoint) {
		return r.MobileFill
	}
	return r.DesktopFill
}

// FitAspect returns the logical surface size for an image of imgW x imgH inside
// a container of containerW x containerH, scaled by fraction and preserving the
// image aspect ratio. Dimensions round to whole pixels and never drop below 1
// unless the inputs are degenerate, in which case (0, 0) is returned.
func FitAspect(containerW, containerH float64, imgW, imgH int, fraction float64) (int, int) {
	if containerW <= 0 || containerH <= 0 || imgW <= 0 || imgH <= 0 || fraction <= 0 {
		return 0, 0
	}
	containerAspect := containerW / containerH
	imageAspect := float64(imgW) / float64(imgH)

	var w, h float64
	if imageAspect > containerAspect {
		w = containerW * fraction
		h = w / imageAspect
	} else {
		h = containerH * fraction
		w = h * imageAspect
	}
	return atLeastOne(w), atLeastOne(h)
}

// Center places a w x h rectangle in the middle of container.
func Center(container Bounds, w, h int) Bounds {
	return Bounds{
		Left:   container.Left + (container.Width-float64(w))/2,
		Top:    container.Top + (container.Height-float64(h))/2,
		Width:  float64(w),
		Height: float64(h),
	}
}

// SplitVertical cuts r at column x (relative to r.Min.X, clamped to the
// width) into the part left of the cut and the part from the cut on.
func SplitVertical(r image.Rectangle, x int) (left, right image.Rectangle) {
	r = r.Canon()
	cut := r.Min.X + min(max(x, 0), r.Dx())
	left, right = r, r
	left.Max.X = cut
	right.Min.X = cut
	return left, right
}

// Scale multiplies a logical length by a device scale factor and rounds.
func Scale(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}

func atLeastOne(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}
