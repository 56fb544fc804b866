package tui

import (
	"strings"

	"github.com/chille/showcase/internal/widgets"
)

const maxPageWidth = 150

func (a *App) View() string {
	width := min(a.width, maxPageWidth)
	page, focus := a.renderPage(width)

	bodyHeight := max(1, a.height-1)
	if a.follow {
		a.offset = followOffset(a.offset, focus, bodyHeight)
	}
	lines := strings.Count(page, "\n") + 1
	if a.offset > lines-bodyHeight {
		a.offset = max(0, lines-bodyHeight)
	}
	body := widgets.Window(page, a.offset, bodyHeight)

	bar := widgets.StatusBar{Text: a.status, Hints: a.keys.hints(), IsErr: a.statusErr}
	if a.jumping {
		bar = widgets.StatusBar{Text: a.jump.View()}
	}
	return body + "\n" + bar.Render(a.width, 1)
}

// followOffset scrolls the least needed to show the focused card. A card
// taller than the window keeps its bottom, where the preview sits, in view.
func followOffset(offset int, focus widgets.Span, height int) int {
	if focus.Height == 0 {
		return offset
	}
	if focus.Bottom()-offset > height {
		offset = focus.Bottom() - height
	}
	if focus.Top < offset && focus.Height <= height {
		offset = focus.Top
	}
	return max(0, offset)
}

// renderPage returns the page and the lines taken by the focused card's row.
func (a *App) renderPage(width int) (string, widgets.Span) {
	now := a.now()
	cards := a.Cards()
	cells := make([]widgets.Widget, len(cards))
	for i, c := range cards {
		cells[i] = widgets.Card{View: c, Focused: i == a.cursor, Dim: !a.entered(i, now)}
	}

	header := widgets.Header{Site: a.site}.Render(width, 0)
	head := widgets.Section{
		Title:    "Featured Skripts",
		Subtitle: "Only showing working & complex systems, ready to drop into a modern server stack.",
	}.Render(width, 0)
	grid, spans := widgets.Grid{Cells: cells, Columns: widgets.Columns(width), Gap: 2, RowGap: 1}.Layout(width)

	var focus widgets.Span
	if a.cursor >= 0 && a.cursor < len(spans) {
		// header, blank, section heading, blank, then the grid
		gridTop := lineCount(header) + 1 + lineCount(head) + 1
		focus = widgets.Span{Top: gridTop + spans[a.cursor].Top, Height: spans[a.cursor].Height}
	}

	featured := head
	if grid != "" {
		featured += "\n\n" + grid
	}
	page := widgets.VStack{Spacing: 1, Widgets: []widgets.Widget{
		widgets.Text(header),
		widgets.Text(featured),
		widgets.Section{Title: "Skills & Tools", Body: widgets.Skills{Items: a.site.Skills}},
		widgets.Section{Title: "Contact", Body: widgets.Contact{Contact: a.site.Contact}},
		widgets.Footer{Name: a.site.Name, Year: a.opts.Year},
	}}.Render(width, 0)
	return page, focus
}

func lineCount(s string) int { return strings.Count(s, "\n") + 1 }
