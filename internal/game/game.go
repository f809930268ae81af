// Package game is the ebiten front end: main menu, control panel, the
// composited split surface with its drag handle and the particle layer.
package game

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/colorworld-split/internal/compositor"
	"github.com/iburimskiy/colorworld-split/internal/config"
	"github.com/iburimskiy/colorworld-split/internal/demo"
	"github.com/iburimskiy/colorworld-split/internal/frame"
	"github.com/iburimskiy/colorworld-split/internal/imagesrc"
	"github.com/iburimskiy/colorworld-split/internal/input"
	"github.com/iburimskiy/colorworld-split/internal/layout"
	"github.com/iburimskiy/colorworld-split/internal/particles"
)

// Options configures a Game.
type Options struct {
	Settings config.Settings
	Logger   *zerolog.Logger
	// Initial, when set, is loaded at start instead of showing the menu.
	Initial image.Image
}

// Game implements ebiten.Game.
type Game struct {
	settings config.Settings
	log      zerolog.Logger

	sched   *frame.Scheduler
	doc     *input.Document
	comp    *compositor.Compositor
	overlay *particles.Overlay
	layer   *particleLayer
	stats   *redrawStats

	// window size in logical pixels and the device scale, as last reported
	// by Layout and as last applied to the compositor
	outW, outH     int
	scale          float64
	appliedW       int
	appliedH       int
	appliedScale   float64
	overlayBounds  layout.Bounds
	surfaceImg     *ebiten.Image
	surfaceVersion uint64
	ui             *ebiten.Image

	// input edge detection
	prevKey map[ebiten.Key]bool
	pointer pointerState
	touch   touchState

	// button state
	hovered  button
	hoverAny bool
	pressed  button
	pressing bool

	phase   float64
	lastErr error
}

// New builds the game; nothing is loaded unless opts.Initial is set.
func New(opts Options) *Game {
	g := &Game{
		settings: opts.Settings,
		log:      zerolog.Nop(),
		sched:    frame.NewScheduler(),
		doc:      input.NewDocument(),
		layer:    &particleLayer{},
		stats:    newRedrawStats(config.StatsRingSize),
		prevKey:  map[ebiten.Key]bool{},
		scale:    1,
	}
	if opts.Logger != nil {
		g.log = opts.Logger.With().Str("component", "game").Logger()
	}
	s := opts.Settings
	g.comp = compositor.New(compositor.Options{
		Rules: layout.FitRules{
			MobileBreakpoint: s.MobileBreakpoint,
			MobileFill:       s.MobileFill,
			DesktopFill:      s.DesktopFill,
		},
		Scheduler: g.sched,
		Document:  g.doc,
		Logger:    opts.Logger,
		ProfileID: s.Profile,
		OnRedraw:  g.stats.record,
	})
	g.comp.SetSplit(s.Split)
	g.overlay = particles.New(particles.Options{
		Scheduler: g.sched,
		Painter:   g.layer,
		Count:     s.ParticleCount,
		ProfileID: g.comp.Profile().ID,
		Logger:    opts.Logger,
	})
	if s.ParticleCount == 0 {
		g.overlay.SetCount(0)
	}
	if opts.Initial != nil {
		g.load(opts.Initial)
	}
	return g
}

// Close stops the particle loop.
func (g *Game) Close() { g.overlay.Close() }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.beginFrame()

	if err := g.updatePointer(); err != nil {
		g.lastErr = err
	}
	g.updateTouches()

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.active() {
		for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
			if justPressed(k) {
				g.selectProfile(i)
			}
		}
		if justPressed(ebiten.KeyP) {
			g.toggleParticles()
		}
	}

	g.syncOverlay()
	g.phase += 1.0 / 60.0
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 16, B: 24, A: 255})
	g.ensureUI()
	g.ui.Clear()

	if g.active() {
		g.drawActive(screen)
	} else {
		g.drawMenu()
	}
	g.drawStatus()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(g.ui, op)
}

// Layout renders at device resolution; everything else works in logical
// pixels and is scaled on the way to the screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	if s <= 0 {
		s = 1
	}
	g.outW, g.outH, g.scale = outsideWidth, outsideHeight, s
	return layout.Scale(outsideWidth, s), layout.Scale(outsideHeight, s)
}

func (g *Game) active() bool {
	return g.comp.Snapshot().Phase == compositor.Active
}

// beginFrame runs the callbacks queued during the previous frame, then
// forwards a changed window size. Anything the resize queues waits for the
// next frame.
func (g *Game) beginFrame() {
	g.sched.Advance(time.Second / time.Duration(ebiten.TPS()))
	g.applyViewport()
}

// applyViewport forwards a changed window size to the compositor.
func (g *Game) applyViewport() {
	if g.outW == g.appliedW && g.outH == g.appliedH && g.scale == g.appliedScale {
		return
	}
	g.appliedW, g.appliedH, g.appliedScale = g.outW, g.outH, g.scale
	g.comp.Resize(compositor.Viewport{
		Container: surfaceContainer(g.outW, g.outH),
		Width:     float64(g.outW),
		Scale:     g.scale,
	})
	g.log.Debug().Int("width", g.outW).Int("height", g.outH).Float64("scale", g.scale).Msg("viewport changed")
}

// syncOverlay keeps the particle layer sized and positioned to the surface.
func (g *Game) syncOverlay() {
	b := g.comp.Snapshot().Bounds
	if b == g.overlayBounds {
		return
	}
	g.overlayBounds = b
	g.overlay.SetBounds(b)
	g.layer.resize(int(b.Width), int(b.Height))
}

func (g *Game) load(img image.Image) {
	g.comp.Load(img)
	g.syncOverlay()
	if g.settings.ShowParticles {
		g.overlay.SetVisible(true)
	}
}

func (g *Game) chooseImage() error {
	path, err := imagesrc.Choose()
	if err != nil || path == "" {
		return err
	}
	img, err := imagesrc.Open(path)
	if err != nil {
		return err
	}
	g.log.Info().Str("path", path).Msg("image chosen")
	g.lastErr = nil
	g.load(img)
	return nil
}

func (g *Game) loadDemo() error {
	img, err := demo.Landscape()
	if err != nil {
		return err
	}
	g.lastErr = nil
	g.load(img)
	return nil
}

func (g *Game) mainMenu() {
	g.overlay.SetVisible(false)
	g.comp.Reset()
	g.syncOverlay()
	g.lastErr = nil
}

func (g *Game) selectProfile(i int) {
	bs := panelButtons(g.outW, g.overlay.Visible())
	if i < 0 || i >= len(bs) || bs[i].id != btnProfile {
		return
	}
	id := bs[i].profile.ID
	if g.comp.SetProfile(id) {
		g.overlay.SetProfile(id)
	}
}

func (g *Game) toggleParticles() {
	g.settings.ShowParticles = !g.overlay.Visible()
	g.overlay.SetVisible(g.settings.ShowParticles)
}

// activate runs the action behind a clicked button.
func (g *Game) activate(b button) error {
	switch b.id {
	case btnChoose, btnChangeImage:
		return g.chooseImage()
	case btnDemo:
		return g.loadDemo()
	case btnProfile:
		if g.comp.SetProfile(b.profile.ID) {
			g.overlay.SetProfile(b.profile.ID)
		}
	case btnParticles:
		g.toggleParticles()
	case btnMainMenu:
		g.mainMenu()
	}
	return nil
}

func (g *Game) buttons() []button {
	if g.active() {
		return panelButtons(g.outW, g.overlay.Visible())
	}
	return menuButtons(g.outW, g.outH)
}

func (g *Game) ensureUI() {
	w, h := g.outW, g.outH
	if w < 1 || h < 1 {
		w, h = 1, 1
	}
	if g.ui != nil {
		if b := g.ui.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		g.ui.Deallocate()
	}
	g.ui = ebiten.NewImage(w, h)
}

// uploadSurface copies the composited raster into a GPU image after redraws.
func (g *Game) uploadSurface() *ebiten.Image {
	s := g.comp.Surface()
	if s == nil {
		return nil
	}
	dw, dh := s.DeviceSize()
	if dw < 1 || dh < 1 {
		return nil
	}
	if g.surfaceImg != nil {
		if b := g.surfaceImg.Bounds(); b.Dx() != dw || b.Dy() != dh {
			g.surfaceImg.Deallocate()
			g.surfaceImg = nil
		}
	}
	if g.surfaceImg == nil {
		g.surfaceImg = ebiten.NewImage(dw, dh)
		g.surfaceVersion = 0
	}
	if v := g.comp.Version(); v != g.surfaceVersion {
		g.surfaceImg.WritePixels(s.Image().Pix)
		g.surfaceVersion = v
	}
	return g.surfaceImg
}

func (g *Game) drawActive(screen *ebiten.Image) {
	st := g.comp.Snapshot()
	b := st.Bounds

	if img := g.uploadSurface(); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(b.Left*g.scale, b.Top*g.scale)
		screen.DrawImage(img, op)
	}
	if g.overlay.Visible() && g.layer.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(b.Left, b.Top)
		op.GeoM.Scale(g.scale, g.scale)
		screen.DrawImage(g.layer.img, op)
	}

	if b.Width > 0 {
		drawHandle(g.ui, b, st.Split)
		labelY := int(b.Top) - labelHeight + 4
		ebitenutil.DebugPrintAt(g.ui, "Normal Vision", int(b.Left), labelY)
		name := g.comp.Profile().Name
		ebitenutil.DebugPrintAt(g.ui, name, int(b.Right())-len(name)*charWidth, labelY)
		pct := fmt.Sprintf("%.0f%%", st.Split)
		ebitenutil.DebugPrintAt(g.ui, pct, int(handleX(b, st.Split))-len(pct)*charWidth/2, int(b.Top+b.Height)-20)
	}

	px := float32(g.outW - config.PanelWidth)
	vector.DrawFilledRect(g.ui, px, 0, config.PanelWidth, float32(g.outH), panelColor, false)
	ebitenutil.DebugPrintAt(g.ui, "Vision Type", int(px)+config.PanelMargin, statusHeight+4)

	for _, bt := range panelButtons(g.outW, g.overlay.Visible()) {
		hovered := g.hoverAny && g.hovered.rect == bt.rect
		selected := bt.id == btnProfile && bt.profile.ID == st.ProfileID
		drawButton(g.ui, bt, hovered, hovered && g.pressing && g.pressed.rect == bt.rect, selected)
		if hovered && bt.id == btnProfile {
			drawTooltip(g.ui, bt.profile.Description, int(px)-8, bt.rect.Min.Y)
		}
	}
}

func (g *Game) drawMenu() {
	title := "ColorWorld Split"
	subtitle := "See an image the way color-blind people see it"
	cx := g.outW / 2
	top := g.outH/2 - config.MenuButtonHeight - 90
	ebitenutil.DebugPrintAt(g.ui, title, cx-len(title)*charWidth/2, top)
	drawHueBar(g.ui, cx-150, top+22, 300, 6, g.phase)
	ebitenutil.DebugPrintAt(g.ui, subtitle, cx-len(subtitle)*charWidth/2, top+40)

	for _, bt := range menuButtons(g.outW, g.outH) {
		hovered := g.hoverAny && g.hovered.rect == bt.rect
		drawButton(g.ui, bt, hovered, hovered && g.pressing && g.pressed.rect == bt.rect, false)
	}
}

func (g *Game) drawStatus() {
	var status string
	if !g.active() {
		status = "Choose an image or try the demo | Esc/Q: Quit"
	} else {
		status = "Drag the handle or click the image | 1-3: vision type, P: particles, Esc/Q: Quit"
		if d, ok := g.stats.last(); ok {
			status += fmt.Sprintf(" | redraw %s (avg %s)", formatMillis(d), formatMillis(g.stats.average(config.StatsRingSize)))
		}
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(g.ui, status, 12, 12)
}
