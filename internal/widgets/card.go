package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chille/showcase/internal/presenter"
)

const placeholderText = "No preview available"

// Card draws one presented card. Dim is used while the card's entrance
// delay has not elapsed.
type Card struct {
	View    presenter.Card
	Focused bool
	Dim     bool
}

func (c Card) Render(width, height int) string {
	if width < 8 {
		return ""
	}
	inner := width - 4
	v := c.View

	title := cardTitleStyle.Render(v.Summary.Title)
	desc := subtleStyle.Width(inner).Render(v.Summary.Description)
	if c.Dim {
		title = mutedStyle.Render(v.Summary.Title)
		desc = mutedStyle.Width(inner).Render(v.Summary.Description)
	}

	features := make([]string, 0, len(v.Summary.Features))
	for _, f := range v.Summary.Features {
		bullet := checkStyle.Render("✓") + " "
		features = append(features, lipgloss.JoinHorizontal(lipgloss.Top, bullet, lipgloss.NewStyle().Width(max(1, inner-2)).Render(f)))
	}

	button := buttonStyle.Render(v.Action)
	if v.Expanded {
		button = buttonOpenStyle.Render(v.Action)
	}
	badge := mutedStyle.Render(v.Badge)
	gap := inner - lipgloss.Width(button) - lipgloss.Width(badge)
	actions := button
	if gap >= 1 {
		actions = button + strings.Repeat(" ", gap) + badge
	}

	parts := []string{title, desc, "", strings.Join(features, "\n"), "", actions}
	if region := c.content(inner); region != "" {
		parts = append(parts, region)
	}

	style := cardStyle
	if c.Focused {
		style = cardFocusStyle
	}
	out := style.Width(width - 2).Render(strings.Join(parts, "\n"))
	if height > 0 {
		out = Clip(out, height)
	}
	return out
}

// content renders the disclosed region clipped to the animation's reveal.
func (c Card) content(inner int) string {
	ct := c.View.Content
	if ct == nil || ct.Reveal <= 0 {
		return ""
	}
	text := mutedStyle
	if ct.Reveal >= 0.5 {
		text = subtleStyle
	}
	var body string
	if ct.Placeholder {
		body = text.Render(placeholderText)
	} else {
		body = text.Render("▶ "+ct.MediaRef) + "\n" + mutedStyle.Render(ct.Alt)
	}
	box := previewStyle.Width(max(1, inner-2)).Align(lipgloss.Center).Render(body)
	return Reveal(box, ct.Reveal)
}
