// Package canvas is a software 2D drawing surface with a device-scaled
// backing store, a save/restore clip stack and raw pixel region access.
package canvas

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/iburimskiy/colorworld-split/internal/layout"
)

// Raster is an RGBA surface addressed in logical pixels for drawing and in
// device pixels for ReadPixels/WritePixels, like a scaled 2D canvas context.
type Raster struct {
	img    *image.RGBA
	width  int
	height int
	scale  float64

	clip  image.Rectangle
	stack []image.Rectangle

	// Interpolator scales images whose size differs from the backing store.
	Interpolator xdraw.Interpolator
}

// New allocates a surface of width x height logical pixels at the given
// device scale. A scale <= 0 is treated as 1.
func New(width, height int, scale float64) *Raster {
	r := &Raster{Interpolator: xdraw.ApproxBiLinear}
	r.Resize(width, height, scale)
	return r
}

// Resize reallocates the backing store and resets the clip stack.
func (r *Raster) Resize(width, height int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.width, r.height, r.scale = width, height, scale
	r.img = image.NewRGBA(image.Rect(0, 0, layout.Scale(width, scale), layout.Scale(height, scale)))
	r.clip = r.img.Rect
	r.stack = r.stack[:0]
}

// Size returns the logical size.
func (r *Raster) Size() (int, int) { return r.width, r.height }

// DeviceSize returns the backing store size in device pixels.
func (r *Raster) DeviceSize() (int, int) { return r.img.Rect.Dx(), r.img.Rect.Dy() }

// Scale returns the device pixel ratio.
func (r *Raster) Scale() float64 { return r.scale }

// Image exposes the backing store. Callers must not retain it across Resize.
func (r *Raster) Image() *image.RGBA { return r.img }

// Save pushes the current clip.
func (r *Raster) Save() { r.stack = append(r.stack, r.clip) }

// Restore pops the clip pushed by the matching Save. Unbalanced calls are ignored.
func (r *Raster) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.clip = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// ClipRect intersects the clip with a logical rectangle.
func (r *Raster) ClipRect(x, y, w, h int) {
	dr := image.Rect(
		layout.Scale(x, r.scale), layout.Scale(y, r.scale),
		layout.Scale(x+w, r.scale), layout.Scale(y+h, r.scale),
	)
	r.clip = r.clip.Intersect(dr)
}

// Clip returns the current clip in device pixels.
func (r *Raster) Clip() image.Rectangle { return r.clip }

// Clear zeroes the pixels inside the current clip.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.clip, image.Transparent, image.Point{}, draw.Src)
}

// DrawImage draws src stretched over the whole surface, limited to the clip.
func (r *Raster) DrawImage(src image.Image) {
	if src == nil || r.clip.Empty() {
		return
	}
	sb := src.Bounds()
	if sb.Dx() == r.img.Rect.Dx() && sb.Dy() == r.img.Rect.Dy() {
		draw.Draw(r.img, r.clip, src, sb.Min.Add(r.clip.Min), draw.Over)
		return
	}
	interp := r.Interpolator
	if interp == nil {
		interp = xdraw.ApproxBiLinear
	}
	dst := r.img.SubImage(r.clip).(*image.RGBA)
	interp.Scale(dst, r.img.Rect, src, sb, xdraw.Over, nil)
}

// ReadPixels copies the device-pixel region rect out of the surface, ignoring
// the clip. The region is cropped to the surface; the result is packed RGBA.
func (r *Raster) ReadPixels(rect image.Rectangle) []byte {
	rect = rect.Intersect(r.img.Rect)
	if rect.Empty() {
		return nil
	}
	rowBytes := rect.Dx() * 4
	out := make([]byte, rowBytes*rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		off := r.img.PixOffset(rect.Min.X, y)
		copy(out[(y-rect.Min.Y)*rowBytes:], r.img.Pix[off:off+rowBytes])
	}
	return out
}

// WritePixels stores packed RGBA pix into the device-pixel region rect,
// ignoring the clip. pix must have been produced for the same rect.
func (r *Raster) WritePixels(rect image.Rectangle, pix []byte) {
	rect = rect.Intersect(r.img.Rect)
	if rect.Empty() {
		return
	}
	rowBytes := rect.Dx() * 4
	if len(pix) < rowBytes*rect.Dy() {
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		off := r.img.PixOffset(rect.Min.X, y)
		copy(r.img.Pix[off:off+rowBytes], pix[(y-rect.Min.Y)*rowBytes:])
	}
}
