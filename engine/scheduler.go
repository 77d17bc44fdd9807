package engine

import (
	"maps"
	"slices"
	"sync"
	"time"
)

// FrameFunc is a one-shot frame callback; now is the frame timestamp
type FrameFunc func(now time.Time)

// Handle identifies a requested frame; zero is never issued
type Handle uint64

// Scheduler delivers one-shot callbacks at the next display refresh
// CancelFrame must be synchronous: once it returns, the cancelled callback never runs
type Scheduler interface {
	RequestFrame(fn FrameFunc) Handle
	CancelFrame(h Handle)
}

// frameQueue holds pending callbacks and the batch currently being dispatched
type frameQueue struct {
	mu       sync.Mutex
	next     Handle
	pending  map[Handle]FrameFunc
	inflight map[Handle]FrameFunc
}

func (q *frameQueue) request(fn FrameFunc) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == nil {
		q.pending = make(map[Handle]FrameFunc)
	}
	q.next++
	q.pending[q.next] = fn
	return q.next
}

func (q *frameQueue) cancel(h Handle) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, h)
	delete(q.inflight, h)
}

func (q *frameQueue) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// dispatch runs every callback requested before this call, in request order
// Callbacks requested during dispatch wait for the next one
// Returns the number of callbacks run
func (q *frameQueue) dispatch(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.inflight = batch
	order := slices.Sorted(maps.Keys(batch))
	q.mu.Unlock()

	ran := 0
	for _, h := range order {
		q.mu.Lock()
		fn, ok := q.inflight[h]
		delete(q.inflight, h)
		q.mu.Unlock()
		if !ok {
			continue
		}
		fn(now)
		ran++
	}

	q.mu.Lock()
	q.inflight = nil
	q.mu.Unlock()
	return ran
}
