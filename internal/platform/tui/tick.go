// Package tui runs games in a terminal through Bubble Tea: key latching,
// the frame clock, menus, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/amoeboids/internal/core"
)

// maxTickRate caps the frame rate a config or flag can ask for.
const maxTickRate = 240

// TickMsg asks the model to advance its frame clock once.
type TickMsg time.Time

// frameInterval is the delay between ticks at rate frames per second,
// with rate clamped to [1, maxTickRate].
func frameInterval(rate int) time.Duration {
	return time.Second / time.Duration(core.Clamp(rate, 1, maxTickRate))
}

// tickCmd schedules the next TickMsg.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
