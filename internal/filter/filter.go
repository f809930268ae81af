// Package filter applies a 3x3 color matrix to packed RGBA pixel buffers.
package filter

import (
	"image"
	"math"

	"github.com/iburimskiy/colorworld-split/internal/profile"
)

// Apply transforms pix in place and returns it. pix holds 4 bytes per pixel
// (r, g, b, a); a trailing partial pixel is left untouched. Alpha passes through.
//
// Each channel is rounded to the nearest integer and stored modulo 256. Results
// are not clamped, so a matrix whose rows sum above 1 wraps bright colors.
func Apply(pix []byte, m profile.Matrix) []byte {
	n := len(pix) - len(pix)%4
	for i := 0; i < n; i += 4 {
		r := float64(pix[i])
		g := float64(pix[i+1])
		b := float64(pix[i+2])

		pix[i] = store(r*m[0][0] + g*m[0][1] + b*m[0][2])
		pix[i+1] = store(r*m[1][0] + g*m[1][1] + b*m[1][2])
		pix[i+2] = store(r*m[2][0] + g*m[2][1] + b*m[2][2])
	}
	return pix
}

// Applied is the non-mutating variant of Apply.
func Applied(pix []byte, m profile.Matrix) []byte {
	out := make([]byte, len(pix))
	copy(out, pix)
	return Apply(out, m)
}

// ApplyRGBA transforms the part of img inside r in place.
func ApplyRGBA(img *image.RGBA, r image.Rectangle, m profile.Matrix) {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return
	}
	rowBytes := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := img.PixOffset(r.Min.X, y)
		Apply(img.Pix[off:off+rowBytes], m)
	}
}

func store(v float64) uint8 {
	// int conversion first: float to uint8 is implementation-defined out of range.
	return uint8(int64(math.Round(v)))
}
