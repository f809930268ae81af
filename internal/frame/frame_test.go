package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = time.Second / 60

func TestSchedulerRunsInRequestOrder(t *testing.T) {
	s := NewScheduler()
	var got []int
	s.Request(func(time.Duration) { got = append(got, 1) })
	s.Request(func(time.Duration) { got = append(got, 2) })
	require.Equal(t, 2, s.Pending())

	assert.Equal(t, 2, s.Advance(tick))
	assert.Equal(t, []int{1, 2}, got)
	assert.Zero(t, s.Pending())
	assert.Equal(t, tick, s.Now())
}

func TestSchedulerDefersCallbacksRequestedDuringAdvance(t *testing.T) {
	s := NewScheduler()
	runs := 0
	var again Callback
	again = func(time.Duration) {
		runs++
		s.Request(again)
	}
	s.Request(again)

	s.Advance(tick)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, s.Pending())
	s.Advance(tick)
	assert.Equal(t, 2, runs)
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	h := s.Request(func(time.Duration) { ran = true })

	assert.True(t, s.Cancel(h))
	assert.False(t, s.Cancel(h))
	assert.False(t, s.Cancel(0))
	assert.Zero(t, s.Advance(tick))
	assert.False(t, ran)
}

func TestLoopStartStop(t *testing.T) {
	s := NewScheduler()
	var stamps []time.Duration
	l := NewLoop(s, func(now time.Duration) { stamps = append(stamps, now) })

	s.Advance(tick)
	assert.Empty(t, stamps, "loop starts stopped")

	l.Start()
	l.Start()
	assert.Equal(t, 1, s.Pending())
	s.Advance(tick)
	s.Advance(tick)
	assert.Equal(t, []time.Duration{2 * tick, 3 * tick}, stamps)
	assert.True(t, l.Running())

	l.Stop()
	l.Stop()
	assert.False(t, l.Running())
	assert.Zero(t, s.Pending())
	s.Advance(tick)
	assert.Len(t, stamps, 2)
}

func TestLoopStoppedFromStep(t *testing.T) {
	s := NewScheduler()
	var l *Loop
	n := 0
	l = NewLoop(s, func(time.Duration) {
		n++
		if n == 2 {
			l.Stop()
		}
	})
	l.Start()
	for i := 0; i < 5; i++ {
		s.Advance(tick)
	}
	assert.Equal(t, 2, n)
	assert.Zero(t, s.Pending())
}
