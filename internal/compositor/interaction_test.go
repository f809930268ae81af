package compositor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/colorworld-split/internal/input"
	"github.com/iburimskiy/colorworld-split/internal/layout"
)

func newInteractive(t *testing.T) harness {
	t.Helper()
	vp := Viewport{Container: layout.Bounds{Left: 20, Top: 5, Width: 100, Height: 10}}
	h := newHarness(t, Options{}, fill(100, 10, color.RGBA{R: 90, G: 60, B: 30, A: 255}), vp)
	require.Equal(t, layout.Bounds{Left: 20, Top: 5, Width: 100, Height: 10}, h.c.Snapshot().Bounds)
	return h
}

func TestPercentAt(t *testing.T) {
	h := newInteractive(t)
	for _, tc := range []struct {
		x    float64
		want float64
	}{
		{20, 0},
		{45, 25},
		{70, 50},
		{120, 100},
		{-500, 0},
		{900, 100},
	} {
		p, ok := h.c.PercentAt(tc.x)
		require.True(t, ok)
		assert.InDelta(t, tc.want, p, 1e-9, "x=%v", tc.x)
	}
}

func TestDragClampsAndIsMonotonic(t *testing.T) {
	h := newInteractive(t)
	h.c.PointerDown(70, 8)
	require.True(t, h.c.Snapshot().Dragging)

	last := -1.0
	for x := -80.0; x <= 220; x += 10 {
		h.doc.Dispatch(input.Event{Kind: input.PointerMove, X: x, Y: 8})
		p := h.c.Snapshot().Split
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 100.0)
		assert.GreaterOrEqual(t, p, last)
		last = p
	}
	assert.Equal(t, 100.0, last)

	h.doc.Dispatch(input.Event{Kind: input.PointerMove, X: -80})
	assert.Equal(t, 0.0, h.c.Snapshot().Split)
}

func TestPointerDownDoesNotMoveSplit(t *testing.T) {
	h := newInteractive(t)
	h.c.PointerDown(30, 8)
	assert.Equal(t, DefaultSplit, h.c.Snapshot().Split)
}

func TestPointerUpRemovesListenersOnce(t *testing.T) {
	h := newInteractive(t)
	h.c.PointerDown(70, 8)
	assert.Equal(t, 1, h.doc.Count(input.PointerMove))
	assert.Equal(t, 1, h.doc.Count(input.PointerUp))

	h.doc.Dispatch(input.Event{Kind: input.PointerUp})
	assert.False(t, h.c.Snapshot().Dragging)
	assert.Zero(t, h.doc.Count(input.PointerMove))
	assert.Zero(t, h.doc.Count(input.PointerUp))

	// moves after release are ignored
	h.doc.Dispatch(input.Event{Kind: input.PointerMove, X: 20})
	h.c.PointerMove(20, 8)
	assert.Equal(t, DefaultSplit, h.c.Snapshot().Split)

	assert.NotPanics(t, func() { h.c.PointerUp() })
}

func TestReleaseWithoutPressIsIgnored(t *testing.T) {
	h := newInteractive(t)
	v := h.c.Version()
	h.c.PointerUp()
	h.c.TouchEnd()
	h.doc.Dispatch(input.Event{Kind: input.PointerUp})
	assert.Equal(t, v, h.c.Version())
	assert.False(t, h.c.Snapshot().Dragging)
}

func TestSecondPointerDownDoesNotStackListeners(t *testing.T) {
	h := newInteractive(t)
	h.c.PointerDown(70, 8)
	h.c.PointerDown(70, 8)
	assert.Equal(t, 1, h.doc.Count(input.PointerMove))
}

func TestSingleTouchDrag(t *testing.T) {
	h := newInteractive(t)
	h.c.TouchStart([]input.Touch{{ID: 1, X: 70, Y: 8}})
	require.True(t, h.c.Snapshot().Dragging)

	h.doc.Dispatch(input.Event{Kind: input.TouchMove, Touches: []input.Touch{{ID: 1, X: 45}}})
	assert.InDelta(t, 25, h.c.Snapshot().Split, 1e-9)

	// a second finger during the gesture is ignored
	h.doc.Dispatch(input.Event{Kind: input.TouchMove, Touches: []input.Touch{{ID: 1, X: 95}, {ID: 2, X: 100}}})
	assert.InDelta(t, 25, h.c.Snapshot().Split, 1e-9)

	h.doc.Dispatch(input.Event{Kind: input.TouchCancel})
	assert.False(t, h.c.Snapshot().Dragging)
	assert.Zero(t, h.doc.Count(input.TouchMove))
	assert.Zero(t, h.doc.Count(input.TouchEnd))
	assert.Zero(t, h.doc.Count(input.TouchCancel))
}

func TestMultiTouchStartIsIgnored(t *testing.T) {
	h := newInteractive(t)
	h.c.TouchStart([]input.Touch{{ID: 1, X: 30}, {ID: 2, X: 90}})
	assert.False(t, h.c.Snapshot().Dragging)
	assert.Zero(t, h.doc.Count(input.TouchMove))
}

func TestClickJumpsToPosition(t *testing.T) {
	h := newInteractive(t)
	h.c.Click(45, 8)
	assert.InDelta(t, 25, h.c.Snapshot().Split, 1e-9)

	h.c.Tap([]input.Touch{{ID: 3, X: 95}})
	assert.InDelta(t, 75, h.c.Snapshot().Split, 1e-9)

	h.c.Tap([]input.Touch{{ID: 3, X: 20}, {ID: 4, X: 20}})
	assert.InDelta(t, 75, h.c.Snapshot().Split, 1e-9)
}

func TestClickIgnoredWhileDragging(t *testing.T) {
	h := newInteractive(t)
	h.c.PointerDown(70, 8)
	h.c.Click(20, 8)
	assert.Equal(t, DefaultSplit, h.c.Snapshot().Split)
}

func TestZeroWidthBoundsLeaveSplitUnchanged(t *testing.T) {
	measurer := MeasurerFunc(func(int, int) (layout.Bounds, bool) {
		return layout.Bounds{Left: 10}, true
	})
	h := newHarness(t, Options{Measurer: measurer}, fill(4, 4, color.RGBA{A: 255}), viewport(4, 4))
	_, ok := h.c.PercentAt(12)
	assert.False(t, ok)

	h.c.Click(12, 0)
	h.c.PointerDown(12, 0)
	h.doc.Dispatch(input.Event{Kind: input.PointerMove, X: 100})
	assert.Equal(t, DefaultSplit, h.c.Snapshot().Split)
}

func TestInteractionIgnoredWhileIdle(t *testing.T) {
	c := New(Options{})
	c.PointerDown(10, 10)
	c.Click(10, 10)
	c.TouchStart([]input.Touch{{X: 10}})
	st := c.Snapshot()
	assert.False(t, st.Dragging)
	assert.Equal(t, DefaultSplit, st.Split)
}
