package main

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/colorworld-split/internal/config"
	"github.com/iburimskiy/colorworld-split/internal/imagesrc"
)

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("640X480")
	require.NoError(t, err)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	w, h, err = parseSize("")
	require.NoError(t, err)
	assert.Zero(t, w+h)

	for _, bad := range []string{"640", "ax4", "4xb", "0x10"} {
		_, _, err := parseSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateRejectsUnknownProfile(t *testing.T) {
	s := config.Default()
	require.NoError(t, validate(s))
	s.Profile = "monochrome"
	assert.ErrorContains(t, validate(s), "unknown profile")
}

func TestExportFrame(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetRGBA(7, 3, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, exportFrame(path, img, config.Default(), "4x2"))

	out, err := imagesrc.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), out.Bounds())

	assert.Error(t, exportFrame(path, nil, config.Default(), ""))
}
