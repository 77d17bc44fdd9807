package engine

import "sync"

// Listener receives window-level events; coordinates are client (window) CSS px
type Listener interface {
	PointerMove(clientX, clientY float64)
	PointerLeave()
	Resize()
}

// Window fans window events out to every subscribed canvas
// Dispatch happens outside the lock so listeners may unsubscribe from a callback
type Window struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]Listener
	order     []uint64
}

// NewWindow creates an empty event hub
func NewWindow() *Window {
	return &Window{listeners: make(map[uint64]Listener)}
}

// Subscribe registers l and returns its removal function; removal is idempotent
func (w *Window) Subscribe(l Listener) (unsubscribe func()) {
	w.mu.Lock()
	w.nextID++
	id := w.nextID
	w.listeners[id] = l
	w.order = append(w.order, id)
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { w.remove(id) })
	}
}

func (w *Window) remove(id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.listeners, id)
	for i, v := range w.order {
		if v == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of subscribed listeners
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

func (w *Window) snapshot() []Listener {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Listener, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.listeners[id])
	}
	return out
}

func (w *Window) PointerMove(clientX, clientY float64) {
	for _, l := range w.snapshot() {
		l.PointerMove(clientX, clientY)
	}
}

func (w *Window) PointerLeave() {
	for _, l := range w.snapshot() {
		l.PointerLeave()
	}
}

func (w *Window) Resize() {
	for _, l := range w.snapshot() {
		l.Resize()
	}
}
