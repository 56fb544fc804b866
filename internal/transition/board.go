package transition

import (
	"time"

	"github.com/google/uuid"

	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/disclosure"
)

// Board keeps one Animator per card on the page.
type Board struct {
	timing Timing
	newRun func() uuid.UUID
	order  []catalog.ID
	anims  map[catalog.ID]*Animator
}

// NewBoard creates animators for ids, all Collapsed.
func NewBoard(timing Timing, ids ...catalog.ID) *Board {
	b := &Board{timing: timing, newRun: uuid.New, anims: map[catalog.ID]*Animator{}}
	b.Sync(ids)
	return b
}

// Sync mounts animators for new cards and drops those whose card is gone.
// A dropped animator's run token can no longer complete anything.
func (b *Board) Sync(ids []catalog.ID) {
	keep := make(map[catalog.ID]struct{}, len(ids))
	order := make([]catalog.ID, 0, len(ids))
	for _, id := range ids {
		if _, dup := keep[id]; dup {
			continue
		}
		keep[id] = struct{}{}
		order = append(order, id)
		if _, ok := b.anims[id]; !ok {
			a := NewAnimator(id, b.timing)
			a.newRun = b.newRun
			b.anims[id] = a
		}
	}
	for id := range b.anims {
		if _, ok := keep[id]; !ok {
			delete(b.anims, id)
		}
	}
	b.order = order
}

// Apply derives every card's flag from sel and returns the timers to
// schedule, in card order. Call it after the selection is committed.
func (b *Board) Apply(sel disclosure.Selection, now time.Time) []Request {
	var reqs []Request
	for _, id := range b.order {
		if req, ok := b.anims[id].Set(sel.Matches(id), now); ok {
			reqs = append(reqs, req)
		}
	}
	return reqs
}

// Complete routes a timer notification. Unknown cards and stale runs are
// ignored.
func (b *Board) Complete(card catalog.ID, run uuid.UUID) bool {
	a, ok := b.anims[card]
	if !ok {
		return false
	}
	return a.Complete(run)
}

// Advance settles every overdue run and reports whether any card is still
// moving.
func (b *Board) Advance(now time.Time) bool {
	moving := false
	for _, id := range b.order {
		a := b.anims[id]
		a.Advance(now)
		if a.State().Moving() {
			moving = true
		}
	}
	return moving
}

// Animating reports whether any card is mid-transition.
func (b *Board) Animating() bool {
	for _, a := range b.anims {
		if a.State().Moving() {
			return true
		}
	}
	return false
}

// Animator returns the card's animator.
func (b *Board) Animator(card catalog.ID) (*Animator, bool) {
	a, ok := b.anims[card]
	return a, ok
}

// State returns the card's state; cards without an animator are Collapsed.
func (b *Board) State(card catalog.ID) State {
	if a, ok := b.anims[card]; ok {
		return a.State()
	}
	return Collapsed
}

// Phase returns the card's phase at now.
func (b *Board) Phase(card catalog.ID, now time.Time) Phase {
	if a, ok := b.anims[card]; ok {
		return a.Phase(now)
	}
	return Phase{}
}

// Count returns how many cards are in state s.
func (b *Board) Count(s State) int {
	n := 0
	for _, a := range b.anims {
		if a.State() == s {
			n++
		}
	}
	return n
}
