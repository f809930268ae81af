// Package particles animates a small set of colored markers that bounce
// inside the bounds of the split-view surface.
package particles

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/colorworld-split/internal/frame"
	"github.com/iburimskiy/colorworld-split/internal/layout"
	"github.com/iburimskiy/colorworld-split/internal/profile"
)

const (
	DefaultCount = 24
	Radius       = 3.0
	MaxLife      = 100.0
	LifeStep     = 0.5
	// velocity components are drawn from [-MaxSpeed, MaxSpeed)
	MaxSpeed = 1.0
)

// Particle is one marker. Color is the only field changed by a profile switch.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Color   color.RGBA
}

// Painter draws the overlay layer.
type Painter interface {
	Clear()
	// FillCircle draws a disc centered at (x, y) in overlay coordinates.
	// alpha in [0, 1] multiplies c.
	FillCircle(x, y, r float64, c color.RGBA, alpha float64)
}

type Options struct {
	Scheduler *frame.Scheduler
	// Painter may be nil; the simulation still runs.
	Painter Painter
	// Count <= 0 selects DefaultCount.
	Count     int
	ProfileID string
	Rand      *rand.Rand
	Logger    *zerolog.Logger
}

// Overlay owns the particle set and its animation loop. The set is created
// once and mutated in place every tick.
type Overlay struct {
	painter Painter
	rng     *rand.Rand
	log     zerolog.Logger
	loop    *frame.Loop

	count     int
	profileID string
	bounds    layout.Bounds
	visible   bool
	closed    bool

	particles []Particle
}

// New returns a hidden overlay.
func New(opts Options) *Overlay {
	o := &Overlay{
		painter:   opts.Painter,
		rng:       opts.Rand,
		log:       zerolog.Nop(),
		count:     opts.Count,
		profileID: opts.ProfileID,
	}
	if opts.Logger != nil {
		o.log = opts.Logger.With().Str("component", "particles").Logger()
	}
	if o.count <= 0 {
		o.count = DefaultCount
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = frame.NewScheduler()
	}
	o.loop = frame.NewLoop(sched, o.Tick)
	return o
}

// Particles returns a copy of the current set.
func (o *Overlay) Particles() []Particle {
	out := make([]Particle, len(o.particles))
	copy(out, o.particles)
	return out
}

// Bounds returns the overlay rectangle; Left/Top are the offset the host
// places the layer at.
func (o *Overlay) Bounds() layout.Bounds { return o.bounds }

func (o *Overlay) Visible() bool { return o.visible }

// Running reports whether an animation frame is pending.
func (o *Overlay) Running() bool { return o.loop.Running() }

// SetBounds updates the area particles move in. Existing particles keep their
// state and bounce back inside on their own.
func (o *Overlay) SetBounds(b layout.Bounds) {
	o.bounds = b
	o.ensure()
}

// SetCount changes the particle count. The set is regenerated.
func (o *Overlay) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	o.count = n
	o.ensure()
}

// SetProfile recolors existing particles in place without touching their
// position, velocity or life.
func (o *Overlay) SetProfile(id string) {
	o.profileID = id
	c := profile.ParticleColor(id)
	for i := range o.particles {
		o.particles[i].Color = c
	}
	o.ensure()
}

// SetVisible starts or stops the animation loop. While hidden nothing moves.
func (o *Overlay) SetVisible(v bool) {
	if o.closed {
		return
	}
	o.visible = v
	if !v {
		o.loop.Stop()
		if o.painter != nil {
			o.painter.Clear()
		}
		o.log.Debug().Msg("animation stopped")
		return
	}
	o.ensure()
	o.loop.Start()
	o.log.Debug().Int("count", len(o.particles)).Msg("animation started")
}

// Close cancels the pending frame for good.
func (o *Overlay) Close() {
	o.loop.Stop()
	o.visible = false
	o.closed = true
}

// ensure generates the set when none exists or its size no longer matches
// the configured count.
func (o *Overlay) ensure() {
	if len(o.particles) != 0 && len(o.particles) == o.count {
		return
	}
	c := profile.ParticleColor(o.profileID)
	ps := make([]Particle, o.count)
	for i := range ps {
		ps[i] = Particle{
			X:       o.rng.Float64() * o.bounds.Width,
			Y:       o.rng.Float64() * o.bounds.Height,
			VX:      (o.rng.Float64() - 0.5) * 2 * MaxSpeed,
			VY:      (o.rng.Float64() - 0.5) * 2 * MaxSpeed,
			Life:    o.rng.Float64() * MaxLife,
			MaxLife: MaxLife,
			Color:   c,
		}
	}
	o.particles = ps
}

// Tick advances every particle by one frame and paints the layer.
func (o *Overlay) Tick(time.Duration) {
	if !o.visible {
		return
	}
	w, h := o.bounds.Width, o.bounds.Height
	if o.painter != nil {
		o.painter.Clear()
	}
	for i := range o.particles {
		p := &o.particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X <= 0 || p.X >= w {
			p.VX = -p.VX
		}
		if p.Y <= 0 || p.Y >= h {
			p.VY = -p.VY
		}

		p.Life -= LifeStep
		if p.Life <= 0 {
			p.Life = p.MaxLife
			p.X = o.rng.Float64() * w
			p.Y = o.rng.Float64() * h
		}

		if o.painter != nil {
			o.painter.FillCircle(p.X, p.Y, Radius, p.Color, p.Life/p.MaxLife)
		}
	}
}
