package filter

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/colorworld-split/internal/profile"
)

func TestApplyMatchesMatrixFormula(t *testing.T) {
	samples := [][3]uint8{
		{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{12, 200, 99}, {128, 64, 32}, {1, 2, 3}, {250, 10, 180},
	}
	for _, p := range profile.All() {
		m := p.Matrix
		for _, s := range samples {
			pix := []byte{s[0], s[1], s[2], 77}
			Apply(pix, m)

			r, g, b := float64(s[0]), float64(s[1]), float64(s[2])
			want := [3]float64{
				r*m[0][0] + g*m[0][1] + b*m[0][2],
				r*m[1][0] + g*m[1][1] + b*m[1][2],
				r*m[2][0] + g*m[2][1] + b*m[2][2],
			}
			for c := 0; c < 3; c++ {
				assert.InDelta(t, want[c], float64(pix[c]), 0.5001, "%s %v channel %d", p.ID, s, c)
			}
			assert.Equal(t, uint8(77), pix[3], "alpha must pass through")
		}
	}
}

func TestApplyRedThroughDeuteranopia(t *testing.T) {
	p, ok := profile.Lookup(profile.Deuteranopia)
	require.True(t, ok)

	pix := []byte{255, 0, 0, 255}
	Apply(pix, p.Matrix)
	assert.Equal(t, uint8(159), pix[0])
	assert.InDelta(t, 179, int(pix[1]), 1)
	assert.Equal(t, uint8(0), pix[2])
	assert.Equal(t, uint8(255), pix[3])
}

func TestApplyMutatesAndReturnsSameBuffer(t *testing.T) {
	pix := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	out := Apply(pix, profile.Default().Matrix)
	require.Len(t, out, len(pix))
	assert.Same(t, &pix[0], &out[0])
}

func TestAppliedLeavesInputUntouched(t *testing.T) {
	pix := []byte{255, 0, 0, 255}
	out := Applied(pix, profile.Default().Matrix)
	assert.Equal(t, []byte{255, 0, 0, 255}, pix)
	assert.Equal(t, uint8(159), out[0])
}

func TestApplyWrapsInsteadOfClamping(t *testing.T) {
	double := profile.Matrix{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	pix := []byte{200, 1, 2, 3}
	Apply(pix, double)
	// 400 mod 256
	assert.Equal(t, []byte{144, 1, 2, 3}, pix)
}

func TestApplyIgnoresTrailingPartialPixel(t *testing.T) {
	pix := []byte{255, 0, 0, 255, 9, 9}
	Apply(pix, profile.Default().Matrix)
	assert.Equal(t, []byte{9, 9}, pix[4:])
}

func TestApplyRGBARegion(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	ApplyRGBA(img, image.Rect(2, 0, 10, 2), profile.Default().Matrix)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 1))
	assert.Equal(t, uint8(159), img.RGBAAt(2, 0).R)
	assert.Equal(t, uint8(159), img.RGBAAt(3, 1).R)

	ApplyRGBA(img, image.Rect(10, 10, 20, 20), profile.Default().Matrix)
}
