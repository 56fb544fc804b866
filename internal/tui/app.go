package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/disclosure"
	"github.com/chille/showcase/internal/logging"
	"github.com/chille/showcase/internal/presenter"
	"github.com/chille/showcase/internal/transition"
)

// Options configure the page's timings.
type Options struct {
	Timing  transition.Timing
	Frame   time.Duration // repaint interval while animating; zero disables repaint ticks
	Stagger time.Duration // entrance delay between consecutive cards
	Year    int
	Clock   func() time.Time
}

// App is the Bubble Tea model for the portfolio page. All state changes
// happen inside Update, so the controller has exactly one writer.
type App struct {
	log     *slog.Logger
	site    catalog.Site
	cat     *catalog.Catalog
	ctl     *disclosure.Controller
	board   *transition.Board
	opts    Options
	keys    keyMap
	now     func() time.Time
	start   time.Time
	framing bool

	cursor int
	offset int
	follow bool // keep the focused card in view; PgUp/PgDn turn it off
	width  int
	height int

	jumping bool
	jump    textinput.Model

	status    string
	statusErr bool
}

// New builds the page model over an immutable catalog.
func New(site catalog.Site, cat *catalog.Catalog, opts Options, log *slog.Logger) *App {
	if log == nil {
		log = logging.Discard()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	if opts.Year == 0 {
		opts.Year = now().Year()
	}
	inp := textinput.New()
	inp.Placeholder = "item title"
	inp.Prompt = "jump> "
	return &App{
		log:    log,
		site:   site,
		cat:    cat,
		ctl:    disclosure.NewController(),
		board:  transition.NewBoard(opts.Timing, cat.IDs()...),
		opts:   opts,
		keys:   defaultKeys(),
		now:    now,
		start:  now(),
		width:  100,
		height: 40,
		jump:   inp,
		status: "Ready",
	}
}

func (a *App) Init() tea.Cmd {
	if a.opts.Stagger > 0 && a.cat.Len() > 1 {
		return a.startFrames()
	}
	return nil
}

// Selection exposes the controller's current value.
func (a *App) Selection() disclosure.Selection { return a.ctl.Current() }

// State returns the animation state of a card.
func (a *App) State(id catalog.ID) transition.State { return a.board.State(id) }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if a.jumping {
			return a.handleJumpKey(m)
		}
		return a.handleKey(m)
	case animDoneMsg:
		if a.board.Complete(m.card, m.run) {
			a.log.Debug("transition settled", "card", m.card, "state", a.board.State(m.card).String())
		}
	case frameMsg:
		return a, a.onFrame(a.now())
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up), key.Matches(m, a.keys.Left):
		if a.cursor > 0 {
			a.cursor--
		}
		a.follow = true
	case key.Matches(m, a.keys.Down), key.Matches(m, a.keys.Right):
		if a.cursor < a.cat.Len()-1 {
			a.cursor++
		}
		a.follow = true
	case key.Matches(m, a.keys.Toggle):
		if it, ok := a.cat.At(a.cursor); ok {
			return a, a.toggle(it.ID)
		}
	case key.Matches(m, a.keys.Nth):
		n := int(m.String()[0] - '1')
		it, ok := a.cat.At(n)
		if !ok {
			a.setStatus(fmt.Sprintf("no item %d", n+1), true)
			return a, nil
		}
		a.cursor = n
		return a, a.toggle(it.ID)
	case key.Matches(m, a.keys.Collapse):
		if sel := a.ctl.Current(); sel.Open {
			return a, a.toggle(sel.ID)
		}
	case key.Matches(m, a.keys.Jump):
		a.jumping = true
		a.jump.SetValue("")
		return a, a.jump.Focus()
	case key.Matches(m, a.keys.PageUp):
		a.follow = false
		a.offset = max(0, a.offset-a.pageSize())
	case key.Matches(m, a.keys.PageDown):
		a.follow = false
		a.offset += a.pageSize()
	}
	return a, nil
}

func (a *App) handleJumpKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.closeJump()
		a.setStatus("Jump cancelled", false)
		return a, nil
	case tea.KeyEnter:
		query := a.jump.Value()
		a.closeJump()
		it, err := a.cat.Match(query)
		if err != nil {
			a.log.Debug("jump", "query", query, "err", err)
			a.setStatus(fmt.Sprintf("no item matches %q", strings.TrimSpace(query)), true)
			return a, nil
		}
		a.cursor = a.cat.Position(it.ID)
		return a, a.toggle(it.ID)
	}
	var cmd tea.Cmd
	a.jump, cmd = a.jump.Update(m)
	return a, cmd
}

func (a *App) closeJump() {
	a.jumping = false
	a.jump.Blur()
}

// Toggle is the page's single user action. The selection is committed
// first; only then are animators told, and their timers scheduled.
func (a *App) Toggle(id catalog.ID) tea.Cmd { return a.toggle(id) }

func (a *App) toggle(id catalog.ID) tea.Cmd {
	sel := a.ctl.Toggle(id)
	a.follow = true
	reqs := a.board.Apply(sel, a.now())
	a.log.Debug("toggle", "id", id, "open", sel.Open, "expanded", sel.ID, "timers", len(reqs))

	if sel.Open {
		if it, ok := a.cat.Lookup(sel.ID); ok {
			a.setStatus("Showing "+it.Title, false)
		} else {
			a.setStatus(fmt.Sprintf("Item %d is not on this page", sel.ID), false)
		}
	} else {
		a.setStatus("Ready", false)
	}

	cmds := make([]tea.Cmd, 0, len(reqs)+1)
	for _, r := range reqs {
		cmds = append(cmds, scheduleDone(r))
	}
	if len(reqs) > 0 {
		cmds = append(cmds, a.startFrames())
	}
	return tea.Batch(cmds...)
}

func (a *App) startFrames() tea.Cmd {
	if a.framing || a.opts.Frame <= 0 {
		return nil
	}
	a.framing = true
	return frameCmd(a.opts.Frame)
}

func (a *App) onFrame(now time.Time) tea.Cmd {
	moving := a.board.Advance(now)
	if moving || !a.entranceDone(now) {
		return frameCmd(a.opts.Frame)
	}
	a.framing = false
	return nil
}

func (a *App) entranceDone(now time.Time) bool {
	if a.opts.Stagger <= 0 || a.cat.Len() < 2 {
		return true
	}
	return now.Sub(a.start) >= time.Duration(a.cat.Len()-1)*a.opts.Stagger
}

// entered reports whether card i's entrance delay has elapsed.
func (a *App) entered(i int, now time.Time) bool {
	return now.Sub(a.start) >= time.Duration(i)*a.opts.Stagger
}

// Cards derives the render tree for the current instant.
func (a *App) Cards() []presenter.Card {
	now := a.now()
	return presenter.PresentAll(a.cat, a.ctl.Current(), func(id catalog.ID) transition.Phase {
		return a.board.Phase(id, now)
	})
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
	if isErr {
		a.log.Warn("status", "text", text)
	}
}

func (a *App) pageSize() int {
	return max(1, a.height-2)
}
