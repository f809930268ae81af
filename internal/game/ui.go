package game

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/colorworld-split/internal/config"
	"github.com/iburimskiy/colorworld-split/internal/layout"
	"github.com/iburimskiy/colorworld-split/internal/profile"
)

const (
	statusHeight = 32
	labelHeight  = 24
	charWidth    = 6 // debug font glyph advance
	tooltipChars = 34
)

type buttonID int

const (
	btnNone buttonID = iota
	btnChoose
	btnDemo
	btnProfile
	btnParticles
	btnChangeImage
	btnMainMenu
)

type button struct {
	id      buttonID
	rect    image.Rectangle
	label   string
	profile profile.Profile // btnProfile only
}

func (b button) contains(x, y float64) bool {
	return x >= float64(b.rect.Min.X) && x < float64(b.rect.Max.X) &&
		y >= float64(b.rect.Min.Y) && y < float64(b.rect.Max.Y)
}

// menuButtons returns the Idle screen buttons centered in a w x h window.
func menuButtons(w, h int) []button {
	x := (w - config.MenuButtonWidth) / 2
	y := h/2 - config.MenuButtonHeight
	rect := func(i int) image.Rectangle {
		top := y + i*(config.MenuButtonHeight+config.ButtonGap*2)
		return image.Rect(x, top, x+config.MenuButtonWidth, top+config.MenuButtonHeight)
	}
	return []button{
		{id: btnChoose, rect: rect(0), label: "Choose Image"},
		{id: btnDemo, rect: rect(1), label: "Try Demo"},
	}
}

// panelButtons returns the control panel on the right edge: one button per
// profile, then the particle toggle, Change Image and Main Menu.
func panelButtons(w int, particlesOn bool) []button {
	x := w - config.PanelWidth + (config.PanelWidth-config.ButtonWidth)/2
	y := statusHeight + labelHeight
	var out []button
	next := func(extraGap int) image.Rectangle {
		y += extraGap
		r := image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
		y += config.ButtonHeight + config.ButtonGap
		return r
	}
	for _, p := range profile.All() {
		out = append(out, button{id: btnProfile, rect: next(0), label: p.Name, profile: p})
	}
	toggle := "Show Particles"
	if particlesOn {
		toggle = "Hide Particles"
	}
	out = append(out,
		button{id: btnParticles, rect: next(config.PanelMargin), label: toggle},
		button{id: btnChangeImage, rect: next(config.PanelMargin), label: "Change Image"},
		button{id: btnMainMenu, rect: next(0), label: "Main Menu"},
	)
	return out
}

func hitButton(buttons []button, x, y float64) (button, bool) {
	for _, b := range buttons {
		if b.contains(x, y) {
			return b, true
		}
	}
	return button{}, false
}

// surfaceContainer is the area left of the panel the image is fitted into.
func surfaceContainer(w, h int) layout.Bounds {
	top := float64(statusHeight + labelHeight)
	return layout.Bounds{
		Left:   config.PanelMargin,
		Top:    top,
		Width:  math.Max(0, float64(w-config.PanelWidth-2*config.PanelMargin)),
		Height: math.Max(0, float64(h)-top-config.PanelMargin),
	}
}

func handleX(b layout.Bounds, split float64) float64 {
	return b.Left + b.Width*split/100
}

// onHandle reports whether (x, y) falls in the grab area around the split line.
func onHandle(b layout.Bounds, split, x, y float64) bool {
	if b.Width <= 0 || y < b.Top || y > b.Top+b.Height {
		return false
	}
	return math.Abs(x-handleX(b, split)) <= config.SliderGrabHalfWidth
}

// wrapText breaks s into lines of at most width characters at spaces.
func wrapText(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

var (
	panelColor  = color.RGBA{R: 25, G: 30, B: 40, A: 230}
	borderColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	handleColor = color.RGBA{R: 255, G: 255, B: 255, A: 230}
)

func drawButton(dst *ebiten.Image, b button, hovered, pressed, selected bool) {
	var bg color.Color
	switch {
	case pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case selected:
		bg = color.RGBA{R: 70, G: 140, B: 110, A: 255}
	case hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	x, y := float32(b.rect.Min.X), float32(b.rect.Min.Y)
	w, h := float32(b.rect.Dx()), float32(b.rect.Dy())
	vector.DrawFilledRect(dst, x, y, w, h, bg, false)
	vector.StrokeRect(dst, x, y, w, h, 2, borderColor, false)

	textX := b.rect.Min.X + (b.rect.Dx()-len(b.label)*charWidth)/2
	textY := b.rect.Min.Y + (b.rect.Dy()-16)/2
	ebitenutil.DebugPrintAt(dst, b.label, textX, textY)
}

// drawTooltip draws a wrapped text box whose right edge sits at right.
func drawTooltip(dst *ebiten.Image, text string, right, top int) {
	lines := wrapText(text, tooltipChars)
	if len(lines) == 0 {
		return
	}
	w := tooltipChars*charWidth + 12
	h := len(lines)*16 + 8
	x := right - w
	if x < 0 {
		x = 0
	}
	vector.DrawFilledRect(dst, float32(x), float32(top), float32(w), float32(h), color.RGBA{A: 210}, false)
	vector.StrokeRect(dst, float32(x), float32(top), float32(w), float32(h), 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, x+6, top+4+i*16)
	}
}

// drawHandle draws the split line and its round grip over the surface.
func drawHandle(dst *ebiten.Image, b layout.Bounds, split float64) {
	x := float32(handleX(b, split))
	top, bottom := float32(b.Top), float32(b.Top+b.Height)
	vector.StrokeLine(dst, x, top, x, bottom, config.SliderLineWidth, handleColor, true)
	cy := (top + bottom) / 2
	vector.DrawFilledCircle(dst, x, cy, config.SliderGripRadius, handleColor, true)
	vector.StrokeCircle(dst, x, cy, config.SliderGripRadius, 2, color.RGBA{R: 60, G: 70, B: 90, A: 255}, true)
	vector.StrokeLine(dst, x-5, cy-5, x-5, cy+5, 2, color.RGBA{R: 60, G: 70, B: 90, A: 255}, true)
	vector.StrokeLine(dst, x+5, cy-5, x+5, cy+5, 2, color.RGBA{R: 60, G: 70, B: 90, A: 255}, true)
}

// drawHueBar draws the animated strip under the menu title.
func drawHueBar(dst *ebiten.Image, x, y, w, h int, phase float64) {
	const segments = 48
	segW := float32(w) / segments
	for i := 0; i < segments; i++ {
		c := hueColor(phase*60+float64(i)*360/segments, 0.7, 0.95)
		vector.DrawFilledRect(dst, float32(x)+float32(i)*segW, float32(y), segW+1, float32(h), c, false)
	}
}
