package compositor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/colorworld-split/internal/profile"
)

func TestRenderHalfFiltered(t *testing.T) {
	orig := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	out, err := Render(fill(20, 10, orig), profile.Tritanopia, 50, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 10), out.Rect)
	assert.Equal(t, orig, out.RGBAAt(9, 5))
	assert.Equal(t, filtered(orig, profile.Tritanopia), out.RGBAAt(10, 5))
}

func TestRenderFitsRequestedSize(t *testing.T) {
	out, err := Render(fill(40, 20, color.RGBA{A: 255}), "", 100, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 5), out.Rect)
}

func TestRenderRejectsBadInput(t *testing.T) {
	_, err := Render(nil, "", 50, 0, 0)
	assert.Error(t, err)

	_, err = Render(fill(2, 2, color.RGBA{A: 255}), "achromatopsia", 50, 0, 0)
	assert.ErrorContains(t, err, "unknown profile")
}

func TestRenderEmptyImage(t *testing.T) {
	_, err := Render(image.NewRGBA(image.Rect(0, 0, 0, 0)), "", 50, 64, 64)
	assert.ErrorIs(t, err, ErrNoSurface)
}
