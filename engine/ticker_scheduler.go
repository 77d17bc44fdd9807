package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/constellation/core"
)

// TickerScheduler emulates a display refresh on a fixed interval
// Callbacks run sequentially on the scheduler goroutine
type TickerScheduler struct {
	q        frameQueue
	clock    Clock
	interval time.Duration

	nextDeadline time.Time
	ticks        atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTickerScheduler creates a stopped scheduler; clock defaults to the system clock
func NewTickerScheduler(interval time.Duration, clock Clock) *TickerScheduler {
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &TickerScheduler{
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (ts *TickerScheduler) RequestFrame(fn FrameFunc) Handle {
	return ts.q.request(fn)
}

func (ts *TickerScheduler) CancelFrame(h Handle) {
	ts.q.cancel(h)
}

// Ticks returns the number of refreshes dispatched
func (ts *TickerScheduler) Ticks() uint64 {
	return ts.ticks.Load()
}

// Start begins the refresh loop
func (ts *TickerScheduler) Start() {
	if ts.running.CompareAndSwap(false, true) {
		ts.wg.Add(1)
		core.Go(ts.loop)
	}
}

// Stop halts the loop and waits for an in-flight refresh to finish
func (ts *TickerScheduler) Stop() {
	ts.stopOnce.Do(func() {
		if ts.running.CompareAndSwap(true, false) {
			close(ts.stopChan)
			ts.wg.Wait()
		}
	})
}

func (ts *TickerScheduler) loop() {
	defer ts.wg.Done()

	ts.nextDeadline = ts.clock.Now().Add(ts.interval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-ts.stopChan:
			return
		default:
		}

		now := ts.clock.Now()
		if !now.Before(ts.nextDeadline) {
			ts.q.dispatch(now)
			ts.ticks.Add(1)

			ts.nextDeadline = ts.nextDeadline.Add(ts.interval)
			// Drop missed refreshes instead of bursting to catch up
			if now.Sub(ts.nextDeadline) > ts.interval*2 {
				ts.nextDeadline = now.Add(ts.interval)
			}
		}

		sleep := ts.nextDeadline.Sub(ts.clock.Now())
		if sleep <= 0 {
			continue
		}
		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-ts.stopChan:
			return
		}
	}
}
