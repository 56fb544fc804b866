package presenter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/disclosure"
	"github.com/chille/showcase/internal/transition"
)

func duel() catalog.Item { return catalog.Defaults()[0] }

func TestPresentCollapsedHasNoContent(t *testing.T) {
	c := Present(duel(), disclosure.None, transition.Phase{})
	require.False(t, c.Expanded)
	require.Nil(t, c.Content)
	require.Equal(t, ActionExpand, c.Action)
	require.Equal(t, "Duel System", c.Summary.Title)
	require.Len(t, c.Summary.Features, 4)
}

func TestPresentExpandedMountsContent(t *testing.T) {
	c := Present(duel(), disclosure.Of(1), transition.Phase{State: transition.Expanding, Reveal: 0.4})
	require.True(t, c.Expanded)
	require.Equal(t, ActionCollapse, c.Action)
	require.NotNil(t, c.Content)
	require.Equal(t, "/duel-system.gif", c.Content.MediaRef)
	require.Equal(t, "Duel System preview", c.Content.Alt)
	require.False(t, c.Content.Placeholder)
	require.Equal(t, 0.4, c.Content.Reveal)
}

func TestPresentKeepsContentWhileCollapsing(t *testing.T) {
	c := Present(duel(), disclosure.Of(2), transition.Phase{State: transition.Collapsing, Reveal: 0.3})
	require.False(t, c.Expanded)
	require.Equal(t, ActionExpand, c.Action)
	require.NotNil(t, c.Content)
	require.Equal(t, 0.3, c.Content.Reveal)
}

func TestPresentBeforeAnimatorCatchesUp(t *testing.T) {
	c := Present(duel(), disclosure.Of(1), transition.Phase{})
	require.NotNil(t, c.Content)
	require.Zero(t, c.Content.Reveal)
}

func TestPresentMissingMediaUsesPlaceholder(t *testing.T) {
	it := catalog.Item{ID: 8, Title: "Bare"}
	c := Present(it, disclosure.Of(8), transition.Phase{State: transition.Expanded, Reveal: 1})
	require.NotNil(t, c.Content)
	require.True(t, c.Content.Placeholder)
	require.Empty(t, c.Content.MediaRef)
}

func TestPresentIsPure(t *testing.T) {
	item := duel()
	sel := disclosure.Of(1)
	ph := transition.Phase{State: transition.Expanding, Reveal: 0.7}
	a := Present(item, sel, ph)
	b := Present(item, sel, ph)
	require.Equal(t, a, b)

	a.Summary.Features[0] = "changed"
	require.Equal(t, "Player matchmaking & queue", item.Features[0])
}

func TestPresentAllOrderAndPhases(t *testing.T) {
	cat := catalog.MustNew(catalog.Defaults()...)
	phases := map[catalog.ID]transition.Phase{
		1: {State: transition.Collapsing, Reveal: 0.2},
		2: {State: transition.Expanding, Reveal: 0.6},
	}
	cards := PresentAll(cat, disclosure.Of(2), func(id catalog.ID) transition.Phase { return phases[id] })
	require.Len(t, cards, 3)
	for i, c := range cards {
		require.Equal(t, i, c.Index)
	}
	require.NotNil(t, cards[0].Content)
	require.True(t, cards[1].Expanded)
	require.Nil(t, cards[2].Content)

	expandedCount := 0
	for _, c := range cards {
		if c.Expanded {
			expandedCount++
		}
	}
	require.Equal(t, 1, expandedCount)
}

func TestStaticSettlesSelection(t *testing.T) {
	cat := catalog.MustNew(catalog.Defaults()...)
	cards := Static(cat, disclosure.Of(3))
	require.Nil(t, cards[0].Content)
	require.NotNil(t, cards[2].Content)
	require.Equal(t, 1.0, cards[2].Content.Reveal)
	require.Equal(t, transition.Expanded, cards[2].State)

	none := Static(cat, disclosure.Of(99))
	for _, c := range none {
		require.Nil(t, c.Content)
	}
}
