package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Columns picks a column count for the terminal width, the way the page
// goes from one to three columns as the viewport grows.
func Columns(width int) int {
	switch {
	case width >= 120:
		return 3
	case width >= 80:
		return 2
	default:
		return 1
	}
}

// Grid lays cells out in rows of Columns, top-aligned.
type Grid struct {
	Cells   []Widget
	Columns int
	Gap     int
	RowGap  int
}

// Span is a run of lines in rendered output.
type Span struct {
	Top    int
	Height int
}

// Bottom is the line just past the span.
func (s Span) Bottom() int { return s.Top + s.Height }

func (g Grid) Render(width, height int) string {
	out, _ := g.Layout(width)
	if height > 0 {
		out = Clip(out, height)
	}
	return out
}

// Layout renders the grid and reports, for every cell, the lines taken by
// the row holding it.
func (g Grid) Layout(width int) (string, []Span) {
	if len(g.Cells) == 0 || width <= 0 {
		return "", nil
	}
	cols := g.Columns
	if cols <= 0 {
		cols = 1
	}
	if cols > len(g.Cells) {
		cols = len(g.Cells)
	}
	cellWidth := max(1, (width-g.Gap*(cols-1))/cols)
	spacer := strings.Repeat(" ", g.Gap)

	var rows []string
	spans := make([]Span, len(g.Cells))
	top := 0
	for start := 0; start < len(g.Cells); start += cols {
		end := min(start+cols, len(g.Cells))
		row := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start && g.Gap > 0 {
				row = append(row, spacer)
			}
			row = append(row, lipgloss.NewStyle().Width(cellWidth).Render(g.Cells[i].Render(cellWidth, 0)))
		}
		joined := lipgloss.JoinHorizontal(lipgloss.Top, row...)
		h := lipgloss.Height(joined)
		for i := start; i < end; i++ {
			spans[i] = Span{Top: top, Height: h}
		}
		top += h + g.RowGap
		rows = append(rows, joined)
	}
	return strings.Join(rows, strings.Repeat("\n", g.RowGap+1)), spans
}

// Text is pre-rendered output.
type Text string

func (t Text) Render(width, height int) string {
	if height > 0 {
		return Clip(string(t), height)
	}
	return string(t)
}
