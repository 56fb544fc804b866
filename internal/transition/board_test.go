package transition

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/disclosure"
	"github.com/chille/showcase/internal/testdata"
)

func cardsOf(reqs []Request) []catalog.ID {
	out := make([]catalog.ID, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Card)
	}
	return out
}

func completeAll(b *Board, reqs []Request) {
	for _, r := range reqs {
		b.Complete(r.Card, r.Run)
	}
}

func TestBoardExampleScenario(t *testing.T) {
	cat := catalog.MustNew(catalog.Defaults()...)
	ctl := disclosure.NewController()
	b := NewBoard(DefaultTiming(), cat.IDs()...)

	reqs := b.Apply(ctl.Toggle(1), t0)
	require.Equal(t, []catalog.ID{1}, cardsOf(reqs))
	require.Equal(t, Expanding, b.State(1))
	completeAll(b, reqs)
	require.Equal(t, Expanded, b.State(1))

	reqs = b.Apply(ctl.Toggle(2), t0.Add(ms(500)))
	require.Equal(t, disclosure.Of(2), ctl.Current())
	require.Equal(t, []catalog.ID{1, 2}, cardsOf(reqs))
	require.Equal(t, Collapsing, b.State(1))
	require.Equal(t, Expanding, b.State(2))
	completeAll(b, reqs)
	require.Equal(t, Collapsed, b.State(1))
	require.Equal(t, Expanded, b.State(2))

	reqs = b.Apply(ctl.Toggle(2), t0.Add(ms(1000)))
	require.Equal(t, disclosure.None, ctl.Current())
	require.Equal(t, []catalog.ID{2}, cardsOf(reqs))
	completeAll(b, reqs)
	require.Equal(t, Collapsed, b.State(2))

	reqs = b.Apply(ctl.Toggle(99), t0.Add(ms(1500)))
	require.Equal(t, disclosure.Of(99), ctl.Current())
	require.Empty(t, reqs, "unknown id animates nothing")
	require.Equal(t, 3, b.Count(Collapsed))
}

func TestBoardInterruptionNeverLeavesTwoExpanded(t *testing.T) {
	ctl := disclosure.NewController()
	b := NewBoard(DefaultTiming(), 1, 2, 3)

	first := b.Apply(ctl.Toggle(1), t0)
	require.Equal(t, Expanding, b.State(1))

	second := b.Apply(ctl.Toggle(2), t0.Add(ms(100)))
	require.Equal(t, Collapsing, b.State(1))
	require.Equal(t, Expanding, b.State(2))

	// The forward timer for card 1 fires late; it must not expand card 1.
	completeAll(b, first)
	require.LessOrEqual(t, b.Count(Expanded), 1)
	require.NotEqual(t, Expanded, b.State(1))

	completeAll(b, second)
	require.Equal(t, 1, b.Count(Expanded))
	require.Equal(t, Expanded, b.State(2))
	require.Equal(t, Collapsed, b.State(1))
}

func TestBoardRapidTogglesSameCard(t *testing.T) {
	ctl := disclosure.NewController()
	b := NewBoard(DefaultTiming(), 1)

	var all []Request
	for i := 0; i < 5; i++ {
		all = append(all, b.Apply(ctl.Toggle(1), t0.Add(ms(20*i)))...)
	}
	require.Equal(t, disclosure.Of(1), ctl.Current())
	require.Equal(t, Expanding, b.State(1))

	completed := 0
	for _, r := range all {
		if b.Complete(r.Card, r.Run) {
			completed++
		}
	}
	require.Equal(t, 1, completed, "only the latest run completes")
	require.Equal(t, Expanded, b.State(1))
}

func TestBoardSyncDropsRemovedCards(t *testing.T) {
	ctl := disclosure.NewController()
	b := NewBoard(DefaultTiming(), 1, 2)
	reqs := b.Apply(ctl.Toggle(2), t0)
	require.Len(t, reqs, 1)

	b.Sync([]catalog.ID{1, 3})
	_, ok := b.Animator(2)
	require.False(t, ok)
	require.False(t, b.Complete(2, reqs[0].Run))
	require.Equal(t, Collapsed, b.State(2))
	require.Equal(t, Collapsed, b.State(3))
	require.False(t, b.Animating())

	b.Sync([]catalog.ID{1, 1, 3})
	require.Equal(t, 2, b.Count(Collapsed))
}

func TestBoardAdvanceReportsMotion(t *testing.T) {
	ctl := disclosure.NewController()
	b := NewBoard(DefaultTiming(), 1, 2)
	b.Apply(ctl.Toggle(1), t0)
	require.True(t, b.Animating())
	require.True(t, b.Advance(t0.Add(ms(100))))
	require.False(t, b.Advance(t0.Add(ms(300))))
	require.Equal(t, Expanded, b.State(1))

	p := b.Phase(1, t0.Add(ms(300)))
	require.Equal(t, Phase{State: Expanded, Reveal: 1}, p)
	require.Equal(t, Phase{}, b.Phase(42, t0))
}

func TestBoardDegradedTimingStillTracksSelection(t *testing.T) {
	ctl := disclosure.NewController()
	b := NewBoard(Timing{}, 1, 2)
	require.Empty(t, b.Apply(ctl.Toggle(1), t0))
	require.Equal(t, Expanded, b.State(1))
	require.Empty(t, b.Apply(ctl.Toggle(2), t0))
	require.Equal(t, Collapsed, b.State(1))
	require.Equal(t, Expanded, b.State(2))
}

func TestBoardLargeCatalogRandomToggles(t *testing.T) {
	cat := testdata.Catalog(40, 3)
	ids := cat.IDs()
	ctl := disclosure.NewController()
	b := NewBoard(DefaultTiming(), ids...)
	r := rand.New(rand.NewSource(11))

	var pending []Request
	now := t0
	for i := 0; i < 300; i++ {
		now = now.Add(ms(r.Intn(200)))
		pending = append(pending, b.Apply(ctl.Toggle(ids[r.Intn(len(ids))]), now)...)
		if r.Intn(3) == 0 {
			// deliver every timer seen so far, most of them stale
			completeAll(b, pending)
			pending = pending[:0]
		}
		require.LessOrEqual(t, b.Count(Expanded)+b.Count(Expanding), 1)
		for _, id := range ids {
			if b.State(id) == Expanding || b.State(id) == Expanded {
				require.True(t, ctl.Current().Matches(id))
			}
		}
	}

	b.Advance(now.Add(ms(1000)))
	require.False(t, b.Animating())
	if sel := ctl.Current(); sel.Open {
		require.Equal(t, Expanded, b.State(sel.ID))
		require.Equal(t, len(ids)-1, b.Count(Collapsed))
	} else {
		require.Equal(t, len(ids), b.Count(Collapsed))
	}
}
