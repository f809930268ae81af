package compositor

import "github.com/iburimskiy/colorworld-split/internal/input"

// PercentAt maps a page x coordinate to a split percentage using the last
// measured bounds. ok is false while the bounds have no width.
func (c *Compositor) PercentAt(x float64) (p float64, ok bool) {
	b := c.state.Bounds
	if b.Width <= 0 {
		return 0, false
	}
	return clampPercent((x - b.Left) / b.Width * 100), true
}

// PointerDown starts a drag gesture. Move and up listeners are attached to
// the document for the lifetime of the gesture.
func (c *Compositor) PointerDown(x, y float64) {
	if !c.beginDrag() {
		return
	}
	c.drag = append(c.drag,
		c.doc.Listen(input.PointerMove, func(ev input.Event) { c.dragTo(ev.X) }),
		c.doc.Listen(input.PointerUp, func(input.Event) { c.PointerUp() }),
	)
}

// PointerMove repositions the split while a drag is in progress.
func (c *Compositor) PointerMove(x, y float64) { c.dragTo(x) }

// PointerUp ends the drag. Without a matching PointerDown it does nothing.
func (c *Compositor) PointerUp() { c.endDrag() }

// TouchStart starts a drag for a single-finger touch; multi-touch is ignored.
func (c *Compositor) TouchStart(touches []input.Touch) {
	if len(touches) != 1 || !c.beginDrag() {
		return
	}
	c.drag = append(c.drag,
		c.doc.Listen(input.TouchMove, func(ev input.Event) { c.TouchMove(ev.Touches) }),
		c.doc.Listen(input.TouchEnd, func(input.Event) { c.TouchEnd() }),
		c.doc.Listen(input.TouchCancel, func(input.Event) { c.TouchEnd() }),
	)
}

// TouchMove repositions the split while dragging with exactly one finger.
func (c *Compositor) TouchMove(touches []input.Touch) {
	if len(touches) != 1 {
		return
	}
	c.dragTo(touches[0].X)
}

// TouchEnd ends the drag; also used for touch cancel.
func (c *Compositor) TouchEnd() { c.endDrag() }

// Click moves the split straight to x. Ignored during a drag.
func (c *Compositor) Click(x, y float64) {
	if c.state.Phase != Active || c.state.Dragging {
		return
	}
	p, ok := c.PercentAt(x)
	if !ok {
		return
	}
	c.SetSplit(p)
}

// Tap is Click for a single-finger touch on the surface.
func (c *Compositor) Tap(touches []input.Touch) {
	if len(touches) != 1 {
		return
	}
	c.Click(touches[0].X, touches[0].Y)
}

func (c *Compositor) beginDrag() bool {
	if c.state.Phase != Active || c.state.Dragging {
		return false
	}
	c.state.Dragging = true
	return true
}

func (c *Compositor) dragTo(x float64) {
	if !c.state.Dragging {
		return
	}
	p, ok := c.PercentAt(x)
	if !ok {
		return
	}
	c.SetSplit(p)
}

func (c *Compositor) endDrag() {
	if !c.state.Dragging && len(c.drag) == 0 {
		return
	}
	c.state.Dragging = false
	for _, sub := range c.drag {
		sub.Remove()
	}
	c.drag = nil
}
