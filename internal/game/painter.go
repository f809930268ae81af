package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// particleLayer is the transparent image the particle overlay paints into.
// It is sized to the surface bounds and drawn on top of the surface.
type particleLayer struct {
	img *ebiten.Image
}

// resize reallocates the layer for a w x h logical area.
func (l *particleLayer) resize(w, h int) {
	if w < 1 || h < 1 {
		if l.img != nil {
			l.img.Deallocate()
		}
		l.img = nil
		return
	}
	if l.img != nil {
		if b := l.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		l.img.Deallocate()
	}
	l.img = ebiten.NewImage(w, h)
}

func (l *particleLayer) Clear() {
	if l.img != nil {
		l.img.Clear()
	}
}

func (l *particleLayer) FillCircle(x, y, r float64, c color.RGBA, alpha float64) {
	if l.img == nil {
		return
	}
	vector.DrawFilledCircle(l.img, float32(x), float32(y), float32(r), withAlpha(c, alpha), true)
}
