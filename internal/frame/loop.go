package frame

import "time"

// Loop runs a step function once per frame until stopped. It keeps exactly one
// callback pending while running.
type Loop struct {
	sched   *Scheduler
	step    Callback
	handle  Handle
	running bool
}

// NewLoop binds step to a scheduler. The loop starts stopped.
func NewLoop(s *Scheduler, step Callback) *Loop {
	return &Loop{sched: s, step: step}
}

// Start schedules the first frame. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.handle = l.sched.Request(l.tick)
}

// Stop cancels the pending frame. Stopping a stopped loop does nothing.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.sched.Cancel(l.handle)
	l.handle = 0
}

// Running reports whether a frame is scheduled.
func (l *Loop) Running() bool { return l.running }

func (l *Loop) tick(now time.Duration) {
	if !l.running {
		return
	}
	l.step(now)
	// step may have stopped the loop
	if l.running {
		l.handle = l.sched.Request(l.tick)
	}
}
