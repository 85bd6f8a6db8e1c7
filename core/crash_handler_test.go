package core

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
)

type fakeTerminal struct {
	finis atomic.Int32
}

func (f *fakeTerminal) Fini() { f.finis.Add(1) }

// capture redirects crash output and exit for the duration of a test
func capture(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)

	oldOut, oldExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut, crashExit = oldOut, oldExit
		RegisterTerminal(nil)
	})
	return &buf, codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	buf, codes := capture(t)
	term := &fakeTerminal{}
	RegisterTerminal(term)

	HandleCrash(nil)

	if term.finis.Load() != 0 || buf.Len() != 0 || len(codes) != 0 {
		t.Error("nil recover value should not touch terminal or exit")
	}
}

func TestHandleCrashRestoresTerminal(t *testing.T) {
	buf, codes := capture(t)
	term := &fakeTerminal{}
	RegisterTerminal(term)

	HandleCrash("boom")

	if got := term.finis.Load(); got != 1 {
		t.Errorf("Fini called %d times, want 1", got)
	}
	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	out := buf.String()
	if !strings.Contains(out, "CRASH DETECTED: boom") || !strings.Contains(out, "Stack Trace:") {
		t.Errorf("unexpected crash output: %q", out)
	}

	// Terminal is finalized once even if a second goroutine crashes
	HandleCrash("again")
	<-codes
	if got := term.finis.Load(); got != 1 {
		t.Errorf("Fini called %d times after second crash, want 1", got)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	_, codes := capture(t)

	Go(func() { panic("worker") })

	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}
