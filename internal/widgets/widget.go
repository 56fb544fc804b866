package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget renders into a width x height cell budget. A height of zero means
// the widget's natural height.
type Widget interface {
	Render(width, height int) string
}

// VStack stacks widgets top to bottom at their natural height.
type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 {
		return ""
	}
	parts := make([]string, 0, len(v.Widgets))
	for _, w := range v.Widgets {
		if s := w.Render(width, 0); s != "" {
			parts = append(parts, s)
		}
	}
	out := strings.Join(parts, strings.Repeat("\n", v.Spacing+1))
	if height > 0 {
		out = Clip(out, height)
	}
	return out
}

// Clip keeps the first n lines of s.
func Clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// Reveal clips s to the share of its lines given by amount in [0,1].
// Any positive amount shows at least one line.
func Reveal(s string, amount float64) string {
	if amount <= 0 || s == "" {
		return ""
	}
	if amount >= 1 {
		return s
	}
	total := strings.Count(s, "\n") + 1
	n := int(amount*float64(total) + 0.5)
	if n < 1 {
		n = 1
	}
	return Clip(s, n)
}

// Window returns height lines of s starting at offset, padding with blank
// lines when s is short.
func Window(s string, offset, height int) string {
	lines := strings.Split(s, "\n")
	if offset < 0 {
		offset = 0
	}
	if offset > len(lines) {
		offset = len(lines)
	}
	lines = lines[offset:]
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
