// Package tui provides the Bubble Tea integration for Dino Run.
// It handles the terminal UI loop, input mapping, and timers.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-run/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// LandMsg ends the jump that was started when it was scheduled.
type LandMsg struct{}

// ConfigReloadedMsg carries a config re-read from disk.
type ConfigReloadedMsg struct {
	Config config.DinoRunConfig
}

// tickCmd returns a command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// landCmd returns a one-shot command that lands the player after d.
func landCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return LandMsg{}
	})
}
