package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/transition"
)

// animDoneMsg is the scheduler's completion notification for one run.
type animDoneMsg struct {
	card catalog.ID
	run  uuid.UUID
}

// frameMsg repaints in-flight animations.
type frameMsg time.Time

// scheduleDone turns an animator request into a timer.
func scheduleDone(req transition.Request) tea.Cmd {
	return tea.Tick(req.After, func(time.Time) tea.Msg {
		return animDoneMsg{card: req.Card, run: req.Run}
	})
}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return frameMsg(t) })
}
