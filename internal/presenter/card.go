// Package presenter maps catalog items and the current selection to card
// views. Everything here is a pure function of its arguments.
package presenter

import (
	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/disclosure"
	"github.com/chille/showcase/internal/transition"
)

const (
	ActionExpand   = "View Plugin"
	ActionCollapse = "Hide Preview"
	Badge          = "Updated — tested"
)

// Summary is always rendered.
type Summary struct {
	Title       string
	Description string
	Features    []string
}

// Content is the disclosed region. Placeholder is set when the item has no
// media reference.
type Content struct {
	MediaRef    string
	Alt         string
	Placeholder bool
	Reveal      float64
}

// Card is the render tree for one item.
type Card struct {
	ID       catalog.ID
	Index    int
	Summary  Summary
	Expanded bool
	Action   string
	Badge    string
	State    transition.State
	Content  *Content
}

// Present derives a card. The content region exists while the item is
// expanded or while its animation has not settled back to Collapsed.
func Present(item catalog.Item, sel disclosure.Selection, phase transition.Phase) Card {
	expanded := sel.Matches(item.ID)
	card := Card{
		ID: item.ID,
		Summary: Summary{
			Title:       item.Title,
			Description: item.Description,
			Features:    append([]string(nil), item.Features...),
		},
		Expanded: expanded,
		Action:   ActionExpand,
		Badge:    Badge,
		State:    phase.State,
	}
	if expanded {
		card.Action = ActionCollapse
	}
	if expanded || phase.State != transition.Collapsed {
		reveal := phase.Reveal
		if expanded && phase.State == transition.Collapsed {
			// Selection is committed before the animator hears about it.
			reveal = 0
		}
		card.Content = &Content{
			MediaRef:    item.MediaRef,
			Alt:         item.Title + " preview",
			Placeholder: !item.HasMedia(),
			Reveal:      clamp(reveal),
		}
	}
	return card
}

// PhaseSource supplies per-card animation phases. transition.Board
// satisfies it through a closure; tests use a map.
type PhaseSource func(catalog.ID) transition.Phase

// PresentAll presents every item in catalog order.
func PresentAll(cat *catalog.Catalog, sel disclosure.Selection, phases PhaseSource) []Card {
	items := cat.Items()
	out := make([]Card, len(items))
	for i, it := range items {
		var ph transition.Phase
		if phases != nil {
			ph = phases(it.ID)
		}
		out[i] = Present(it, sel, ph)
		out[i].Index = i
	}
	return out
}

// Static presents cards with settled animation, as a page snapshot would
// show them.
func Static(cat *catalog.Catalog, sel disclosure.Selection) []Card {
	return PresentAll(cat, sel, func(id catalog.ID) transition.Phase {
		if sel.Matches(id) {
			return transition.Phase{State: transition.Expanded, Reveal: 1}
		}
		return transition.Phase{}
	})
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
