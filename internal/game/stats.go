package game

import "time"

// redrawStats records the last N compositor redraw durations in a ring
// buffer so the status line can show how long filtering takes.
type redrawStats struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func newRedrawStats(ringSize int) *redrawStats {
	if ringSize < 1 {
		ringSize = 1
	}
	return &redrawStats{buffer: make([]time.Duration, ringSize)}
}

func (s *redrawStats) record(d time.Duration) {
	s.buffer[s.nextIndex] = d
	s.nextIndex++
	if s.nextIndex >= len(s.buffer) {
		s.nextIndex = 0
	}
	if s.filled < len(s.buffer) {
		s.filled++
	}
}

// snapshot returns up to the last n durations, most recent last.
func (s *redrawStats) snapshot(n int) []time.Duration {
	n = min(max(n, 0), s.filled)
	size := len(s.buffer)
	first := (s.nextIndex - n + size) % size
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = s.buffer[(first+i)%size]
	}
	return out
}

// average returns the mean of the last n durations, or 0 with none recorded.
func (s *redrawStats) average(n int) time.Duration {
	recent := s.snapshot(n)
	if len(recent) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range recent {
		sum += d
	}
	return sum / time.Duration(len(recent))
}

func (s *redrawStats) last() (time.Duration, bool) {
	if s.filled == 0 {
		return 0, false
	}
	r := s.snapshot(1)
	return r[0], true
}
