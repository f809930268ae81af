// Package compositor renders an image split in two along a vertical line:
// the original on the left, the color-vision simulation on the right.
package compositor

import (
	"image"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/colorworld-split/internal/canvas"
	"github.com/iburimskiy/colorworld-split/internal/filter"
	"github.com/iburimskiy/colorworld-split/internal/frame"
	"github.com/iburimskiy/colorworld-split/internal/input"
	"github.com/iburimskiy/colorworld-split/internal/layout"
	"github.com/iburimskiy/colorworld-split/internal/profile"
)

// Phase is the compositor's macro state.
type Phase int

const (
	Idle Phase = iota
	Active
)

func (p Phase) String() string {
	if p == Active {
		return "active"
	}
	return "idle"
}

// DefaultSplit is the split percentage after start and after Reset.
const DefaultSplit = 50.0

// State is the mutable interaction state. Snapshot returns a copy.
type State struct {
	Phase     Phase
	ProfileID string
	Split     float64
	Bounds    layout.Bounds
	Dragging  bool
}

// Viewport describes the container the surface is fitted into.
type Viewport struct {
	// Container is the container rectangle in logical page pixels.
	Container layout.Bounds
	// Width selects the device class; zero means Container.Width.
	Width float64
	// Scale is the device pixel ratio; zero means 1.
	Scale float64
}

func (v Viewport) scale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

func (v Viewport) classWidth() float64 {
	if v.Width > 0 {
		return v.Width
	}
	return v.Container.Width
}

// Measurer reports where a surface of w x h logical pixels currently sits on
// screen. ok is false while the surface is not laid out.
type Measurer interface {
	Measure(w, h int) (b layout.Bounds, ok bool)
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(w, h int) (layout.Bounds, bool)

func (f MeasurerFunc) Measure(w, h int) (layout.Bounds, bool) { return f(w, h) }

// Options wires the compositor to its host.
type Options struct {
	Rules     layout.FitRules
	Scheduler *frame.Scheduler
	Document  *input.Document
	// Measurer defaults to centering the surface in the viewport container.
	Measurer Measurer
	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger
	// ProfileID selects the initial profile; empty or unknown means the default.
	ProfileID string
	// OnRedraw, when set, receives the duration of every completed redraw.
	OnRedraw func(time.Duration)
}

// Compositor owns the render surface and the split interaction state.
// All methods run on the host's update goroutine.
type Compositor struct {
	rules    layout.FitRules
	sched    *frame.Scheduler
	doc      *input.Document
	measurer Measurer
	log      zerolog.Logger
	onRedraw func(time.Duration)

	state    State
	profile  profile.Profile
	source   image.Image
	viewport Viewport

	surface   *canvas.Raster
	offscreen *canvas.Raster

	remeasure     frame.Handle
	pendingRedraw frame.Handle
	drag          []*input.Subscription

	version uint64
}

// New returns an Idle compositor.
func New(opts Options) *Compositor {
	c := &Compositor{
		rules:    opts.Rules,
		sched:    opts.Scheduler,
		doc:      opts.Document,
		measurer: opts.Measurer,
		log:      zerolog.Nop(),
		onRedraw: opts.OnRedraw,
	}
	if opts.Logger != nil {
		c.log = opts.Logger.With().Str("component", "compositor").Logger()
	}
	if c.sched == nil {
		c.sched = frame.NewScheduler()
	}
	if c.doc == nil {
		c.doc = input.NewDocument()
	}
	if c.measurer == nil {
		c.measurer = MeasurerFunc(c.centerInViewport)
	}
	p, ok := profile.Lookup(opts.ProfileID)
	if !ok {
		p = profile.Default()
	}
	c.profile = p
	c.state = State{Phase: Idle, ProfileID: p.ID, Split: DefaultSplit}
	return c
}

// Snapshot returns a copy of the interaction state.
func (c *Compositor) Snapshot() State { return c.state }

// Profile returns the selected profile.
func (c *Compositor) Profile() profile.Profile { return c.profile }

// Surface returns the composited surface, or nil while nothing is loaded.
func (c *Compositor) Surface() *canvas.Raster { return c.surface }

// Version increments after every completed redraw.
func (c *Compositor) Version() uint64 { return c.version }

// Load makes img the source image and enters Active. A nil image is ignored.
func (c *Compositor) Load(img image.Image) {
	if img == nil {
		c.log.Debug().Msg("load ignored: nil image")
		return
	}
	c.source = img
	c.offscreen = nil
	c.state.Phase = Active
	b := img.Bounds()
	c.log.Info().Int("width", b.Dx()).Int("height", b.Dy()).Msg("image loaded")
	c.relayout()
	c.Redraw()
}

// Reset returns to Idle: drops the image and surface, ends any drag, cancels
// deferred work and restores the default split.
func (c *Compositor) Reset() {
	c.endDrag()
	c.sched.Cancel(c.remeasure)
	c.sched.Cancel(c.pendingRedraw)
	c.remeasure, c.pendingRedraw = 0, 0
	c.source = nil
	c.surface = nil
	c.offscreen = nil
	c.state.Phase = Idle
	c.state.Split = DefaultSplit
	c.state.Bounds = layout.Bounds{}
	c.log.Info().Msg("reset to idle")
}

// SetProfile selects a catalog profile and redraws. Unknown ids are rejected.
func (c *Compositor) SetProfile(id string) bool {
	p, ok := profile.Lookup(id)
	if !ok {
		c.log.Warn().Str("profile", id).Msg("unknown profile")
		return false
	}
	c.profile = p
	c.state.ProfileID = p.ID
	c.Redraw()
	return true
}

// SetSplit clamps p to [0, 100], stores it and redraws.
func (c *Compositor) SetSplit(p float64) {
	c.state.Split = clampPercent(p)
	c.Redraw()
}

// Resize records a new viewport, refits the surface and re-measures its
// bounds at once; the redraw follows on the next frame.
func (c *Compositor) Resize(vp Viewport) {
	c.viewport = vp
	if c.state.Phase != Active {
		return
	}
	c.relayout()
	if c.pendingRedraw != 0 {
		return
	}
	c.pendingRedraw = c.sched.Request(func(time.Duration) {
		c.pendingRedraw = 0
		c.Redraw()
	})
}

// MeasureBounds refreshes the published on-screen rectangle of the surface.
func (c *Compositor) MeasureBounds() {
	if c.surface == nil {
		return
	}
	w, h := c.surface.Size()
	b, ok := c.measurer.Measure(w, h)
	if !ok {
		return
	}
	c.state.Bounds = b
}

// relayout fits the surface to the viewport, rebuilds the scaled copy of the
// source and measures bounds now and again on the next frame, once the host
// has committed the new size.
func (c *Compositor) relayout() {
	if c.source == nil {
		return
	}
	sb := c.source.Bounds()
	fraction := c.rules.FillFraction(c.viewport.classWidth())
	w, h := layout.FitAspect(c.viewport.Container.Width, c.viewport.Container.Height, sb.Dx(), sb.Dy(), fraction)
	if w == 0 || h == 0 {
		// nothing on screen: drop the surface and the bounds that mapped input onto it
		c.surface = nil
		c.offscreen = nil
		c.state.Bounds = layout.Bounds{}
		c.sched.Cancel(c.remeasure)
		c.remeasure = 0
		return
	}
	scale := c.viewport.scale()
	if c.surface == nil {
		c.surface = canvas.New(w, h, scale)
	} else if sw, sh := c.surface.Size(); sw != w || sh != h || c.surface.Scale() != scale {
		c.surface.Resize(w, h, scale)
		c.offscreen = nil
	}
	if c.offscreen == nil {
		c.offscreen = canvas.New(w, h, scale)
		c.offscreen.DrawImage(c.source)
	}
	c.log.Debug().Int("width", w).Int("height", h).Float64("scale", scale).Msg("surface sized")

	c.MeasureBounds()
	c.sched.Cancel(c.remeasure)
	c.remeasure = c.sched.Request(func(time.Duration) {
		c.remeasure = 0
		c.MeasureBounds()
	})
}

// Redraw composites the surface from the current state. It runs to completion
// synchronously and is skipped while there is no surface.
func (c *Compositor) Redraw() {
	s := c.surface
	if c.state.Phase != Active || s == nil || c.offscreen == nil {
		c.log.Debug().Stringer("phase", c.state.Phase).Msg("redraw skipped: no surface")
		return
	}
	start := time.Now()
	src := c.offscreen.Image()
	m := c.profile.Matrix
	w, h := s.Size()
	dw, dh := s.DeviceSize()

	s.Clear()
	x := SplitX(w, c.state.Split)
	switch {
	case x <= 0:
		s.DrawImage(src)
		full := image.Rect(0, 0, dw, dh)
		s.WritePixels(full, filter.Apply(s.ReadPixels(full), m))
	case x >= w:
		s.DrawImage(src)
	default:
		left, right := layout.SplitVertical(image.Rect(0, 0, w, h), x)

		s.Save()
		s.ClipRect(left.Min.X, left.Min.Y, left.Dx(), left.Dy())
		s.DrawImage(src)
		s.Restore()

		s.Save()
		s.ClipRect(right.Min.X, right.Min.Y, right.Dx(), right.Dy())
		s.DrawImage(src)
		region := image.Rect(layout.Scale(x, s.Scale()), 0, dw, dh)
		s.WritePixels(region, filter.Apply(s.ReadPixels(region), m))
		s.Restore()
	}
	c.version++
	if c.onRedraw != nil {
		c.onRedraw(time.Since(start))
	}
}

// SplitX converts a split percentage to a surface column: round(width*p/100).
func SplitX(width int, p float64) int {
	return int(math.Round(float64(width) * p / 100))
}

func (c *Compositor) centerInViewport(w, h int) (layout.Bounds, bool) {
	if c.viewport.Container.Width <= 0 || c.viewport.Container.Height <= 0 {
		return layout.Bounds{}, false
	}
	return layout.Center(c.viewport.Container, w, h), true
}

func clampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return DefaultSplit
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
