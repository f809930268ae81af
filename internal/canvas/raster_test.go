package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestNewScalesBackingStore(t *testing.T) {
	r := New(100, 50, 2)
	w, h := r.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
	dw, dh := r.DeviceSize()
	assert.Equal(t, 200, dw)
	assert.Equal(t, 100, dh)
	assert.Equal(t, 2.0, r.Scale())

	r = New(10, 10, 0)
	assert.Equal(t, 1.0, r.Scale())
}

func TestClipIsolatedBySaveRestore(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	r := New(10, 4, 1)

	r.Save()
	r.ClipRect(0, 0, 4, 4)
	r.DrawImage(solid(10, 4, red))
	r.Restore()

	assert.Equal(t, red, r.Image().RGBAAt(3, 2))
	assert.Equal(t, color.RGBA{}, r.Image().RGBAAt(4, 2))
	assert.Equal(t, r.Image().Rect, r.Clip())
}

func TestClipRectUsesDeviceScale(t *testing.T) {
	r := New(10, 10, 2)
	r.ClipRect(5, 0, 5, 10)
	assert.Equal(t, image.Rect(10, 0, 20, 20), r.Clip())
}

func TestRestoreWithoutSaveIsIgnored(t *testing.T) {
	r := New(4, 4, 1)
	r.ClipRect(0, 0, 2, 2)
	r.Restore()
	assert.Equal(t, image.Rect(0, 0, 2, 2), r.Clip())
}

func TestDrawImageScalesToSurface(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	r := New(8, 8, 1.5)
	r.DrawImage(solid(2, 2, blue))
	dw, dh := r.DeviceSize()
	require.Equal(t, 12, dw)
	require.Equal(t, 12, dh)
	assert.Equal(t, blue, r.Image().RGBAAt(0, 0))
	assert.Equal(t, blue, r.Image().RGBAAt(11, 11))
}

func TestReadWritePixelsIgnoreClip(t *testing.T) {
	r := New(4, 2, 1)
	r.DrawImage(solid(4, 2, color.RGBA{R: 1, G: 2, B: 3, A: 4}))
	r.ClipRect(0, 0, 1, 1)

	region := image.Rect(2, 0, 4, 2)
	pix := r.ReadPixels(region)
	require.Len(t, pix, 2*2*4)
	assert.Equal(t, []byte{1, 2, 3, 4}, pix[:4])

	for i := range pix {
		pix[i] = 9
	}
	r.WritePixels(region, pix)
	assert.Equal(t, color.RGBA{R: 9, G: 9, B: 9, A: 9}, r.Image().RGBAAt(3, 1))
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 4}, r.Image().RGBAAt(1, 1))
}

func TestReadPixelsOutsideSurface(t *testing.T) {
	r := New(4, 4, 1)
	assert.Nil(t, r.ReadPixels(image.Rect(10, 10, 12, 12)))
	r.WritePixels(image.Rect(10, 10, 12, 12), []byte{1, 2, 3})
}

func TestClearRespectsClip(t *testing.T) {
	green := color.RGBA{G: 255, A: 255}
	r := New(4, 1, 1)
	r.DrawImage(solid(4, 1, green))
	r.Save()
	r.ClipRect(2, 0, 2, 1)
	r.Clear()
	r.Restore()
	assert.Equal(t, green, r.Image().RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{}, r.Image().RGBAAt(2, 0))
}
