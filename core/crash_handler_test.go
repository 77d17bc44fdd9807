package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type fakeScreen struct{ finis int }

func (f *fakeScreen) Fini() { f.finis++ }

// captureCrash swaps the exit and output hooks for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)
	oldOut, oldExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut, crashExit = oldOut, oldExit
		SetCrashTerminal(nil)
	})
	return &buf, codes
}

func TestHandleCrashNil(t *testing.T) {
	buf, codes := captureCrash(t)
	HandleCrash(nil)
	if buf.Len() != 0 || len(codes) != 0 {
		t.Error("nil recover value should be ignored")
	}
}

func TestHandleCrashRestoresTerminal(t *testing.T) {
	buf, codes := captureCrash(t)
	screen := &fakeScreen{}
	SetCrashTerminal(screen)

	HandleCrash("boom")

	if screen.finis != 1 {
		t.Errorf("Fini called %d times, want 1", screen.finis)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("missing crash banner in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Stack Trace:") {
		t.Error("missing stack trace")
	}
	if code := <-codes; code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
}

func TestGoRecovers(t *testing.T) {
	buf, codes := captureCrash(t)
	var wg sync.WaitGroup
	wg.Add(1)
	Go(func() {
		defer wg.Done()
		panic("worker")
	})
	if code := <-codes; code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	wg.Wait()
	if !strings.Contains(buf.String(), "worker") {
		t.Errorf("panic value not reported: %q", buf.String())
	}
}
