package game

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

// hueColor returns an opaque color for hue h in degrees (any range) at
// saturation s and value v, both in [0, 1].
func hueColor(h, s, v float64) color.RGBA {
	channel := func(n float64) uint8 {
		k := math.Mod(n+h/60, 6)
		if k < 0 {
			k += 6
		}
		return uint8(math.Round(255 * (v - v*s*max(0, min(k, 4-k, 1)))))
	}
	return color.RGBA{R: channel(5), G: channel(3), B: channel(1), A: 255}
}

// withAlpha returns c at the given opacity; alpha is clamped to [0, 1].
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	a := min(max(alpha, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * float64(c.A)))}
}

// formatMillis formats a duration as milliseconds with two decimals.
func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
}
