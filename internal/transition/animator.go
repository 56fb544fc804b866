// Package transition drives the reveal and hide animation of a card's
// content region.
//
// Each card owns an Animator cycling through Collapsed, Expanding, Expanded
// and Collapsing. The animator never waits on a clock itself: a state change
// yields a Request that the caller schedules on whatever timer it has, and
// the timer reports back through Complete with the request's run token. A
// token that is no longer current is ignored, which is how an in-flight
// animation is cancelled when the card is toggled again.
package transition

import (
	"time"

	"github.com/google/uuid"

	"github.com/chille/showcase/internal/catalog"
)

type State int

const (
	Collapsed State = iota
	Expanding
	Expanded
	Collapsing
)

func (s State) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Expanding:
		return "expanding"
	case Expanded:
		return "expanded"
	case Collapsing:
		return "collapsing"
	default:
		return "unknown"
	}
}

// Moving reports whether the state is a timed one.
func (s State) Moving() bool { return s == Expanding || s == Collapsing }

// Timing holds full-travel durations. A zero duration disables that
// animation and the transition happens at once.
type Timing struct {
	Expand   time.Duration
	Collapse time.Duration
}

// DefaultTiming matches the page's 0.3s height/opacity transition.
func DefaultTiming() Timing {
	return Timing{Expand: 300 * time.Millisecond, Collapse: 300 * time.Millisecond}
}

// Request asks the scheduler to report completion of run after After.
type Request struct {
	Card   catalog.ID
	Run    uuid.UUID
	Target State
	After  time.Duration
}

// Phase is what the presenter needs from an animator at one instant.
type Phase struct {
	State  State
	Reveal float64
}

// Animator is the per-card state machine. Not safe for concurrent use.
type Animator struct {
	card   catalog.ID
	timing Timing
	newRun func() uuid.UUID

	state   State
	run     uuid.UUID
	from    float64
	started time.Time
	dur     time.Duration
}

// NewAnimator returns an animator in Collapsed.
func NewAnimator(card catalog.ID, timing Timing) *Animator {
	return &Animator{card: card, timing: timing, newRun: uuid.New}
}

func (a *Animator) State() State { return a.state }

// Run returns the in-flight run token, or uuid.Nil when idle.
func (a *Animator) Run() uuid.UUID { return a.run }

// Mounted reports whether the content region exists. It is released on
// entering Collapsed.
func (a *Animator) Mounted() bool { return a.state != Collapsed }

// Set feeds the card's expansion flag. When the flag flips mid-animation the
// animator reverses from its current position, spending only the share of
// the duration needed to travel back. The bool result is false when nothing
// needs scheduling: either the flag did not change the machine or the
// transition was instantaneous.
func (a *Animator) Set(expanded bool, now time.Time) (Request, bool) {
	switch {
	case expanded && (a.state == Collapsed || a.state == Collapsing):
		p := a.Position(now)
		return a.start(Expanding, p, scale(a.timing.Expand, 1-p), now)
	case !expanded && (a.state == Expanded || a.state == Expanding):
		p := a.Position(now)
		return a.start(Collapsing, p, scale(a.timing.Collapse, p), now)
	}
	return Request{}, false
}

func (a *Animator) start(s State, from float64, dur time.Duration, now time.Time) (Request, bool) {
	if dur <= 0 {
		a.settle(target(s))
		return Request{}, false
	}
	a.state = s
	a.run = a.newRun()
	a.from = from
	a.started = now
	a.dur = dur
	return Request{Card: a.card, Run: a.run, Target: target(s), After: dur}, true
}

// Complete is the timer's notification. Only the current run advances the
// machine; stale tokens return false.
func (a *Animator) Complete(run uuid.UUID) bool {
	if run == uuid.Nil || run != a.run || !a.state.Moving() {
		return false
	}
	a.settle(target(a.state))
	return true
}

// Advance settles a run whose duration has elapsed. It covers a lost timer
// notification and returns true if the state changed.
func (a *Animator) Advance(now time.Time) bool {
	if !a.state.Moving() || now.Sub(a.started) < a.dur {
		return false
	}
	a.settle(target(a.state))
	return true
}

func (a *Animator) settle(s State) {
	a.state = s
	a.run = uuid.Nil
	a.dur = 0
	a.started = time.Time{}
	if s == Expanded {
		a.from = 1
	} else {
		a.from = 0
	}
}

// Position is the eased reveal amount in [0,1] at now. It is continuous
// across reversals because a reversed run starts from the value returned
// here.
func (a *Animator) Position(now time.Time) float64 {
	switch a.state {
	case Expanded:
		return 1
	case Expanding:
		return a.from + (1-a.from)*ease(a.progress(now))
	case Collapsing:
		return a.from * (1 - ease(a.progress(now)))
	default:
		return 0
	}
}

func (a *Animator) Phase(now time.Time) Phase {
	return Phase{State: a.state, Reveal: a.Position(now)}
}

func (a *Animator) progress(now time.Time) float64 {
	if a.dur <= 0 {
		return 1
	}
	f := float64(now.Sub(a.started)) / float64(a.dur)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func target(s State) State {
	if s == Expanding || s == Expanded {
		return Expanded
	}
	return Collapsed
}

func scale(d time.Duration, share float64) time.Duration {
	if share <= 0 {
		return 0
	}
	if share > 1 {
		share = 1
	}
	return time.Duration(float64(d) * share)
}

// ease is a cubic ease-in-out curve.
func ease(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
