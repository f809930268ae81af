package game

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/colorworld-split/internal/input"
)

type pressTarget int

const (
	targetNone pressTarget = iota
	targetButton
	targetHandle
	targetSurface
)

type pointerState struct {
	down         bool
	target       pressTarget
	lastX, lastY float64
}

type touchState struct {
	ids     []ebiten.TouchID
	just    []ebiten.TouchID
	touches []input.Touch
}

// cursor returns the mouse position in logical pixels.
func (g *Game) cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x) / g.scale, float64(y) / g.scale
}

// updatePointer turns mouse state into button presses, compositor gestures
// and document-level move/up events.
func (g *Game) updatePointer() error {
	x, y := g.cursor()
	g.hovered, g.hoverAny = hitButton(g.buttons(), x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pointer = pointerState{down: true, lastX: x, lastY: y}
		st := g.comp.Snapshot()
		switch {
		case g.hoverAny:
			g.pointer.target = targetButton
			g.pressed, g.pressing = g.hovered, true
		case g.active() && onHandle(st.Bounds, st.Split, x, y):
			g.pointer.target = targetHandle
			g.comp.PointerDown(x, y)
		case g.active() && st.Bounds.Contains(x, y):
			g.pointer.target = targetSurface
		}
	} else if g.pointer.down && (x != g.pointer.lastX || y != g.pointer.lastY) {
		g.pointer.lastX, g.pointer.lastY = x, y
		g.doc.Dispatch(input.Event{Kind: input.PointerMove, X: x, Y: y})
	}

	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return nil
	}
	p := g.pointer
	g.pointer = pointerState{}
	g.doc.Dispatch(input.Event{Kind: input.PointerUp, X: x, Y: y})

	pressed := g.pressed
	g.pressed, g.pressing = button{}, false
	switch p.target {
	case targetButton:
		if g.hoverAny && g.hovered.rect == pressed.rect {
			return g.activate(pressed)
		}
	case targetSurface:
		if g.comp.Snapshot().Bounds.Contains(x, y) {
			g.comp.Click(x, y)
		}
	}
	return nil
}

// currentTouches reads every active touch in logical pixels.
func (g *Game) currentTouches() []input.Touch {
	g.touch.ids = ebiten.AppendTouchIDs(g.touch.ids[:0])
	out := make([]input.Touch, 0, len(g.touch.ids))
	for _, id := range g.touch.ids {
		x, y := ebiten.TouchPosition(id)
		out = append(out, input.Touch{ID: int(id), X: float64(x) / g.scale, Y: float64(y) / g.scale})
	}
	return out
}

// updateTouches starts single-finger drags on the handle, taps the surface
// and forwards touch moves and ends to the document.
func (g *Game) updateTouches() {
	prev := g.touch.touches
	cur := g.currentTouches()
	g.touch.touches = cur

	g.touch.just = inpututil.AppendJustPressedTouchIDs(g.touch.just[:0])
	if len(g.touch.just) > 0 {
		x, y := ebiten.TouchPosition(g.touch.just[0])
		lx, ly := float64(x)/g.scale, float64(y)/g.scale
		st := g.comp.Snapshot()
		if b, ok := hitButton(g.buttons(), lx, ly); ok {
			if len(cur) == 1 {
				if err := g.activate(b); err != nil {
					g.lastErr = err
				}
			}
		} else if g.active() && onHandle(st.Bounds, st.Split, lx, ly) {
			g.comp.TouchStart(cur)
		} else if g.active() && st.Bounds.Contains(lx, ly) {
			g.comp.Tap(cur)
		}
	}

	for _, t := range prev {
		if inpututil.IsTouchJustReleased(ebiten.TouchID(t.ID)) {
			g.doc.Dispatch(input.Event{Kind: input.TouchEnd, Touches: cur})
			return
		}
	}
	if len(cur) > 0 && len(prev) > 0 && !slices.Equal(prev, cur) {
		g.doc.Dispatch(input.Event{Kind: input.TouchMove, Touches: cur})
	}
}
