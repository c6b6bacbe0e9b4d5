package schedule

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/gallery/layout"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func input(n int) layout.Input {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%03d", i)
	}
	return layout.Input{
		Items:          items,
		Mode:           gallery.ModeGrid,
		ContainerWidth: 1280,
		CellSize:       140,
	}
}

// waitFor reads results until one satisfies pred or the deadline passes.
func waitFor(t *testing.T, s *Scheduler, pred func(gallery.LayoutResult) bool) gallery.LayoutResult {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-s.Results():
			if pred(r) {
				return r
			}
		case <-deadline:
			t.Fatal("timed out waiting for layout result")
		}
	}
}

func TestSchedulerDeliversResult(t *testing.T) {
	s := New(testLogger())
	defer s.Close()

	s.Submit(input(10))
	got := waitFor(t, s, func(r gallery.LayoutResult) bool { return len(r.Layout) == 10 })

	if got.TotalHeight <= 0 {
		t.Errorf("TotalHeight = %v, want > 0", got.TotalHeight)
	}
}

// TestSchedulerLatestWins: after a burst of submissions the view converges
// on the result for the last submitted input. Intermediate results may or
// may not be observed; stale ones never arrive after the final one.
func TestSchedulerLatestWins(t *testing.T) {
	s := New(testLogger())
	defer s.Close()

	for n := 1; n <= 50; n++ {
		s.Submit(input(n))
	}

	waitFor(t, s, func(r gallery.LayoutResult) bool { return len(r.Layout) == 50 })

	// Once converged, no further (stale) results show up.
	select {
	case r := <-s.Results():
		t.Errorf("unexpected result after convergence: %d items", len(r.Layout))
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSchedulerWithholdsUnmeasuredWidth(t *testing.T) {
	s := New(testLogger())
	defer s.Close()

	in := input(5)
	in.ContainerWidth = 0
	s.Submit(in)

	select {
	case r := <-s.Results():
		t.Errorf("unmeasured submission produced a result: %d items", len(r.Layout))
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSchedulerInvalidModeLogged(t *testing.T) {
	s := New(testLogger())
	defer s.Close()

	bad := input(5)
	bad.Mode = "spiral"
	s.Submit(bad)

	// Contract violations are logged and dropped, not delivered.
	select {
	case r := <-s.Results():
		t.Errorf("invalid submission produced a result: %d items", len(r.Layout))
	case <-time.After(100 * time.Millisecond):
	}

	// The scheduler keeps working afterwards.
	s.Submit(input(3))
	waitFor(t, s, func(r gallery.LayoutResult) bool { return len(r.Layout) == 3 })
}

func TestSchedulerSubmitAfterClose(t *testing.T) {
	s := New(testLogger())
	s.Close()
	s.Close() // idempotent

	// Must not panic or deadlock.
	s.Submit(input(5))

	select {
	case r, ok := <-s.Results():
		if ok {
			t.Errorf("closed scheduler delivered a result: %d items", len(r.Layout))
		}
	case <-time.After(time.Second):
		t.Error("results channel not closed after Close")
	}
}

// TestSchedulerCloseClosesResults: Close terminates the results stream so a
// goroutine blocked on Results() unblocks instead of leaking.
func TestSchedulerCloseClosesResults(t *testing.T) {
	s := New(testLogger())

	s.Submit(input(4))
	waitFor(t, s, func(r gallery.LayoutResult) bool { return len(r.Layout) == 4 })

	s.Close()

	select {
	case _, ok := <-s.Results():
		if ok {
			t.Error("expected closed results channel, got a result")
		}
	case <-time.After(time.Second):
		t.Error("results channel still open after Close")
	}
}
