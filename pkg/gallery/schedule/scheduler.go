// Package schedule implements the per-view layout scheduler.
//
// # Overview
//
// Each consuming view owns exactly one Scheduler bound to its lifetime. The
// scheduler serializes layout computation onto a single dedicated goroutine
// so that expensive passes over large collections never block the view, and
// applies a strict latest-wins policy: a submission replaces any previously
// submitted but not-yet-started input, and a result is discarded when a newer
// submission arrived while it was being computed.
//
// The latest-wins policy is implemented as a single-slot submission channel
// with overwrite-on-full semantics, plus a monotonically increasing token per
// submission. The token guard closes the classic out-of-order race where a
// slow older computation finishes after a newer one and would otherwise
// overwrite its result; steady state remains "eventually consistent with the
// latest input".
//
// There is no cancellation: a superseded computation runs to completion and
// its result is dropped on arrival. Close tears down the worker; submissions
// after Close are ignored, never a panic.
package schedule

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/gallery/layout"
)

// submission pairs a layout input with its ordering token.
type submission struct {
	token uint64
	input layout.Input
}

// Scheduler owns one long-lived computation goroutine for a single view.
type Scheduler struct {
	submitCh  chan submission
	resultsCh chan gallery.LayoutResult

	seq    atomic.Uint64 // last issued submission token
	done   chan struct{}
	closed sync.Once
	logger *log.Logger
}

// New creates a scheduler and starts its computation goroutine. The logger
// may be nil; computation errors (contract violations such as an unknown
// mode) are logged, not delivered.
func New(logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	s := &Scheduler{
		submitCh:  make(chan submission, 1),
		resultsCh: make(chan gallery.LayoutResult, 1),
		done:      make(chan struct{}),
		logger:    logger,
	}
	go s.run()
	return s
}

// Submit hands a new input to the scheduler without blocking. Any pending
// input that has not started computing is replaced. Inputs with a
// non-positive container width are withheld per the engine contract: the
// view should keep rendering its previous result until a real width is
// measured.
func (s *Scheduler) Submit(in layout.Input) {
	if in.ContainerWidth <= 0 {
		s.logger.Debug("withholding layout submission, container width unmeasured")
		return
	}

	select {
	case <-s.done:
		return
	default:
	}

	sub := submission{token: s.seq.Add(1), input: in}
	for {
		select {
		case s.submitCh <- sub:
			return
		default:
			// Slot full: drop the stale pending submission and retry.
			select {
			case <-s.submitCh:
			default:
			}
		}
	}
}

// Results returns the channel on which the most recent layout result is
// published. The channel holds at most one result; if the view is slow to
// read, older unread results are overwritten, never queued. The channel is
// closed once the worker exits after Close, so receivers observe termination.
func (s *Scheduler) Results() <-chan gallery.LayoutResult {
	return s.resultsCh
}

// Close tears down the computation goroutine. In-flight work is abandoned;
// its result is posted nowhere. Close is idempotent.
func (s *Scheduler) Close() {
	s.closed.Do(func() { close(s.done) })
}

func (s *Scheduler) run() {
	// Only this goroutine sends on resultsCh, so closing here is safe and
	// lets result readers unblock when the scheduler shuts down.
	defer close(s.resultsCh)
	for {
		select {
		case <-s.done:
			return
		case sub := <-s.submitCh:
			result, err := layout.Compute(sub.input)
			if err != nil {
				s.logger.Warn("layout computation failed", "err", err)
				continue
			}
			if sub.token != s.seq.Load() {
				// A newer submission arrived while computing; this result
				// is stale, drop it.
				continue
			}
			s.publish(result)
		}
	}
}

// publish places the result in the single-slot results channel, overwriting
// any unread previous result.
func (s *Scheduler) publish(result gallery.LayoutResult) {
	for {
		select {
		case <-s.done:
			return
		case s.resultsCh <- result:
			return
		default:
			select {
			case <-s.resultsCh:
			default:
			}
		}
	}
}
