package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chille/showcase/internal/catalog"
)

// Header is the brand line, hero heading and intro.
type Header struct {
	Site catalog.Site
}

func (h Header) Render(width, height int) string {
	nav := mutedStyle.Render("Featured · Skills · Contact")
	brand := brandStyle.Render(h.Site.Name)
	gap := width - lipgloss.Width(brand) - lipgloss.Width(nav)
	top := brand
	if gap >= 2 {
		top = brand + strings.Repeat(" ", gap) + nav
	}
	lines := []string{
		top,
		"",
		headingStyle.Render(h.Site.Heading),
		subtleStyle.Width(width).Render(h.Site.Tagline),
	}
	if h.Site.Intro != "" {
		lines = append(lines, "", lipgloss.NewStyle().Width(width).Render(h.Site.Intro))
	}
	return strings.Join(lines, "\n")
}

// Section is a titled block with an optional subtitle.
type Section struct {
	Title    string
	Subtitle string
	Body     Widget
}

func (s Section) Render(width, height int) string {
	lines := []string{headingStyle.Render(s.Title)}
	if s.Subtitle != "" {
		lines = append(lines, subtleStyle.Width(width).Render(s.Subtitle))
	}
	if s.Body != nil {
		lines = append(lines, "", s.Body.Render(width, 0))
	}
	return strings.Join(lines, "\n")
}

// Skills lists skill summaries.
type Skills struct {
	Items []catalog.Skill
}

func (s Skills) Render(width, height int) string {
	out := make([]string, 0, len(s.Items))
	for _, sk := range s.Items {
		out = append(out, cardTitleStyle.Render(sk.Name)+"\n"+subtleStyle.Width(max(1, width-2)).Render(sk.Summary))
	}
	return strings.Join(out, "\n\n")
}

// Contact is the contact block.
type Contact struct {
	Contact catalog.Contact
}

func (c Contact) Render(width, height int) string {
	body := subtleStyle.Width(max(1, width-4)).Render(c.Contact.Blurb) + "\n\n" +
		mutedStyle.Render(c.Contact.Channel) + "\n" + headingStyle.Render(c.Contact.Handle)
	return cardStyle.Width(max(1, width-2)).Render(body)
}

// Footer is the copyright line.
type Footer struct {
	Name string
	Year int
}

func (f Footer) Render(width, height int) string {
	text := fmt.Sprintf("© %d %s", f.Year, f.Name)
	return lipgloss.PlaceHorizontal(max(width, lipgloss.Width(text)), lipgloss.Center, mutedStyle.Render(text))
}

// StatusBar is the bottom key-hint/status line.
type StatusBar struct {
	Text  string
	Hints string
	IsErr bool
}

func (s StatusBar) Render(width, height int) string {
	style := footerStyle
	if s.IsErr {
		style = statusErrorStyle
	}
	text := s.Text
	if s.Hints != "" {
		if text != "" {
			text += "  "
		}
		text += s.Hints
	}
	return style.Render(padRight(text, max(1, width-4)))
}
