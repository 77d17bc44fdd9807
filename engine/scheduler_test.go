package engine

import (
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

func TestManualSchedulerOrderAndOneShot(t *testing.T) {
	m := NewManualScheduler()
	var log []int
	for i := 1; i <= 3; i++ {
		m.RequestFrame(func(time.Time) { log = append(log, i) })
	}
	if ran := m.Step(epoch); ran != 3 {
		t.Fatalf("ran %d, want 3", ran)
	}
	if !reflect.DeepEqual(log, []int{1, 2, 3}) {
		t.Errorf("order = %v", log)
	}
	if ran := m.Step(epoch); ran != 0 {
		t.Errorf("callbacks are one-shot, ran %d again", ran)
	}
}

func TestManualSchedulerRequestDuringStep(t *testing.T) {
	m := NewManualScheduler()
	count := 0
	var loop FrameFunc
	loop = func(time.Time) {
		count++
		m.RequestFrame(loop)
	}
	m.RequestFrame(loop)

	m.Step(epoch)
	if count != 1 || m.Pending() != 1 {
		t.Errorf("count=%d pending=%d, re-request must wait for the next step", count, m.Pending())
	}
	m.Step(epoch)
	if count != 2 {
		t.Errorf("count = %d", count)
	}
}

func TestCancelWithinBatch(t *testing.T) {
	m := NewManualScheduler()
	ran := map[string]bool{}
	var second Handle
	m.RequestFrame(func(time.Time) {
		ran["first"] = true
		m.CancelFrame(second)
	})
	second = m.RequestFrame(func(time.Time) { ran["second"] = true })

	m.Step(epoch)
	if !ran["first"] || ran["second"] {
		t.Errorf("ran = %v, cancelled callback in the same batch must not run", ran)
	}
}

func TestCancelBeforeStep(t *testing.T) {
	m := NewManualScheduler()
	h := m.RequestFrame(func(time.Time) { t.Error("cancelled callback ran") })
	m.CancelFrame(h)
	m.CancelFrame(h)
	m.CancelFrame(0)
	if m.Step(epoch) != 0 {
		t.Error("step ran a cancelled frame")
	}
}

func TestStepPassesTimestamp(t *testing.T) {
	m := NewManualScheduler()
	var got time.Time
	m.RequestFrame(func(now time.Time) { got = now })
	at := epoch.Add(time.Second)
	m.Step(at)
	if !got.Equal(at) {
		t.Errorf("timestamp %v, want %v", got, at)
	}
}

func TestTickerSchedulerStartStop(t *testing.T) {
	ts := NewTickerScheduler(time.Millisecond, nil)
	var frames atomic.Int64
	var loop FrameFunc
	loop = func(time.Time) {
		frames.Add(1)
		ts.RequestFrame(loop)
	}
	ts.RequestFrame(loop)

	ts.Start()
	ts.Start()
	deadline := time.Now().Add(2 * time.Second)
	for frames.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatal("no frames delivered")
		}
		time.Sleep(time.Millisecond)
	}
	ts.Stop()
	ts.Stop()

	stopped := frames.Load()
	time.Sleep(10 * time.Millisecond)
	if frames.Load() != stopped {
		t.Error("frames delivered after Stop")
	}
	if ts.Ticks() == 0 {
		t.Error("tick counter not advanced")
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	if !mock.Now().Equal(epoch) {
		t.Errorf("initial time %v", mock.Now())
	}
	if got := mock.Advance(time.Hour); !got.Equal(epoch.Add(time.Hour)) {
		t.Errorf("Advance returned %v", got)
	}
	next := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(next)
	if !mock.Now().Equal(next) {
		t.Errorf("SetTime not applied")
	}
}
