// Package frame provides a display-refresh style callback scheduler and a
// cancellable loop built on it. The host advances the scheduler once per
// frame; tests advance it by hand as a virtual clock.
package frame

import "time"

// Callback receives the scheduler time of the frame it runs in.
type Callback func(now time.Duration)

// Handle identifies a pending callback. The zero Handle is never issued.
type Handle uint64

type request struct {
	id Handle
	fn Callback
}

// Scheduler queues one-shot callbacks for the next frame. It is not safe for
// concurrent use; everything runs on the host's update goroutine.
type Scheduler struct {
	now     time.Duration
	lastID  Handle
	queue   []request
	pending map[Handle]struct{}
}

// NewScheduler returns an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: map[Handle]struct{}{}}
}

// Request schedules fn for the next Advance.
func (s *Scheduler) Request(fn Callback) Handle {
	s.lastID++
	s.queue = append(s.queue, request{id: s.lastID, fn: fn})
	s.pending[s.lastID] = struct{}{}
	return s.lastID
}

// Cancel drops a pending callback. It reports whether anything was cancelled;
// cancelling an unknown, fired or already cancelled handle is a no-op.
func (s *Scheduler) Cancel(h Handle) bool {
	if _, ok := s.pending[h]; !ok {
		return false
	}
	delete(s.pending, h)
	return true
}

// Advance moves time forward by dt and runs every callback that was pending
// before the call, in request order. Callbacks requested while running wait
// for the following Advance. It returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	s.now += dt
	batch := s.queue
	s.queue = nil
	ran := 0
	for _, req := range batch {
		if _, ok := s.pending[req.id]; !ok {
			continue
		}
		delete(s.pending, req.id)
		req.fn(s.now)
		ran++
	}
	return ran
}

// Now returns the scheduler time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of callbacks waiting for the next frame.
func (s *Scheduler) Pending() int { return len(s.pending) }
