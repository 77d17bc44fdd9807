package engine

import "testing"

type recorder struct {
	moves, leaves, resizes int
	x, y                   float64
	onMove                 func()
}

func (r *recorder) PointerMove(x, y float64) {
	r.moves++
	r.x, r.y = x, y
	if r.onMove != nil {
		r.onMove()
	}
}

func (r *recorder) PointerLeave() { r.leaves++ }
func (r *recorder) Resize()       { r.resizes++ }

func TestWindowBroadcast(t *testing.T) {
	w := NewWindow()
	a, b := &recorder{}, &recorder{}
	w.Subscribe(a)
	unsubB := w.Subscribe(b)

	w.PointerMove(3, 4)
	w.PointerLeave()
	w.Resize()
	for name, r := range map[string]*recorder{"a": a, "b": b} {
		if r.moves != 1 || r.leaves != 1 || r.resizes != 1 || r.x != 3 || r.y != 4 {
			t.Errorf("%s = %+v", name, *r)
		}
	}

	unsubB()
	unsubB()
	w.Resize()
	if b.resizes != 1 || a.resizes != 2 {
		t.Errorf("after unsubscribe a=%d b=%d", a.resizes, b.resizes)
	}
	if w.Len() != 1 {
		t.Errorf("Len = %d", w.Len())
	}
}

func TestWindowUnsubscribeFromCallback(t *testing.T) {
	w := NewWindow()
	r := &recorder{}
	var unsub func()
	r.onMove = func() { unsub() }
	unsub = w.Subscribe(r)

	w.PointerMove(1, 1)
	w.PointerMove(2, 2)
	if r.moves != 1 {
		t.Errorf("moves = %d, listener should be gone after the first", r.moves)
	}
}
