// Package scroll holds the timer-driven state machine that decides, on each
// one-second tick, whether the viewer advances its window, holds, or
// terminates.
package scroll

import (
	"github.com/rneiva/autoscroll/internal/layout"
	"github.com/rneiva/autoscroll/internal/textfile"
)

// State is the scheduler's run state.
type State int

const (
	Running State = iota
	Paused
)

// Outcome is the decision produced by one tick.
type Outcome int

const (
	// OutcomeHeld means no scroll happened this tick.
	OutcomeHeld Outcome = iota
	// OutcomeScrolled means the window advanced by one logical line.
	OutcomeScrolled
	// OutcomeFinished means the viewer should terminate.
	OutcomeFinished
)

// Scheduler tracks the scroll countdown, the pause flag, and the window's
// starting line number. The start line only ever increases.
type Scheduler struct {
	interval  int
	countdown int
	state     State
	startLine int

	// displayAndExit is set once a render shows the whole file on a
	// single screen; the next scroll boundary then terminates instead of
	// advancing.
	displayAndExit bool
}

// NewScheduler returns a running scheduler with the countdown armed so that
// the first interval is measured from program start.
func NewScheduler(intervalSeconds int) *Scheduler {
	return &Scheduler{
		interval:  intervalSeconds,
		countdown: intervalSeconds,
		state:     Running,
		startLine: 1,
	}
}

// Pause freezes the scroll countdown. Repeated calls are no-ops.
func (s *Scheduler) Pause() { s.state = Paused }

// Resume unfreezes the scroll countdown. Repeated calls are no-ops.
func (s *Scheduler) Resume() { s.state = Running }

// Paused reports whether scrolling is currently frozen.
func (s *Scheduler) Paused() bool { return s.state == Paused }

// StartLine is the 1-based line number of the oldest displayed line.
func (s *Scheduler) StartLine() int { return s.startLine }

// Countdown exposes the remaining seconds until the next scroll boundary.
func (s *Scheduler) Countdown() int { return s.countdown }

// ObserveRender feeds the last render back into the termination policy: a
// render that reaches the end of the store before the window ever moved
// means the whole file fit on one screen, and the viewer exits after the
// current interval instead of scrolling.
func (s *Scheduler) ObserveRender(res layout.Result) {
	if res.ReachedEnd && s.startLine == 1 {
		s.displayAndExit = true
	}
}

// Tick advances the countdown by one second and scrolls the store when the
// interval has elapsed. While paused it does nothing, leaving the countdown
// untouched. The first tick fires at program start, so the countdown passes
// zero before the first scroll; hence the boundary is zero only once the
// window has moved, and minus one on the very first interval.
func (s *Scheduler) Tick(store *textfile.List) Outcome {
	if s.state == Paused {
		return OutcomeHeld
	}

	s.countdown--
	boundary := (s.countdown == 0 && s.startLine > 1) || s.countdown == -1
	if !boundary {
		return OutcomeHeld
	}

	if s.displayAndExit {
		return OutcomeFinished
	}

	store.PopFront()
	if store.Len() == 0 {
		return OutcomeFinished
	}

	s.startLine++
	s.countdown = s.interval
	return OutcomeScrolled
}
