package engine

import "time"

// ManualScheduler dispatches frames only when Step is called
type ManualScheduler struct {
	q frameQueue
}

// NewManualScheduler creates an idle scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) RequestFrame(fn FrameFunc) Handle {
	return m.q.request(fn)
}

func (m *ManualScheduler) CancelFrame(h Handle) {
	m.q.cancel(h)
}

// Step runs one refresh at now and returns the number of callbacks run
func (m *ManualScheduler) Step(now time.Time) int {
	return m.q.dispatch(now)
}

// Pending returns the number of callbacks waiting for the next Step
func (m *ManualScheduler) Pending() int {
	return m.q.count()
}
