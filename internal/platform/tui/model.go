package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/games/dinorun"
	"github.com/vovakirdan/dino-run/internal/snapshot"
	"github.com/vovakirdan/dino-run/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one Dino Run session.
type Model struct {
	game       *dinorun.Controller
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	shotDir    string
	status     string
	width      int
	height     int
	ticking    bool // a TickMsg is scheduled
	scoreSaved bool // score has been saved for current game over
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game *dinorun.Controller, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shotDir, err := snapshot.DefaultDir()
	if err != nil {
		logger.Warn("screenshots disabled", "error", err)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:    game,
		store:   store,
		logger:  logger,
		config:  cfg,
		keys:    keys,
		help:    h,
		shotDir: shotDir,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		ticking: true, // Init schedules the first tick
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())

	game.Reset(cfg)
	return m
}

// WithScreenshotDir overrides where ctrl+s captures are written.
func (m Model) WithScreenshotDir(dir string) Model {
	m.shotDir = dir
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, m.boardHeight())
		return m, nil

	case TickMsg:
		return m.handleTick()

	case LandMsg:
		m.game.Land()
		return m, nil

	case ConfigReloadedMsg:
		m.game.SetConfig(msg.Config)
		m.status = "config reloaded"
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Movement goes straight to the
// controller; it does not wait for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.boardHeight())
		return m, nil

	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil

	case core.ActionRestart:
		resumed := m.game.Restart()
		m.scoreSaved = false
		m.status = ""
		if resumed && !m.ticking {
			m.ticking = true
			return m, tickCmd(m.game.TickInterval())
		}
		return m, nil
	}

	code, ok := action.MoveCode()
	if !ok {
		return m, nil
	}
	if m.game.HandleMove(code) && code == core.MoveJump {
		return m, landCmd(m.game.JumpDuration())
	}
	return m, nil
}

// handleTick advances the game and reschedules itself until game over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Tick()

	if result.State.GameOver {
		m.ticking = false
		m.saveScore()
		return m, nil
	}

	return m, tickCmd(m.game.TickInterval())
}

// saveScore records the finished round once.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	snap := m.game.Snapshot()
	if m.store == nil || snap.Score == 0 {
		return
	}

	round := storage.Round{
		GameID: dinorun.ID,
		Score:  snap.Score,
		Ticks:  snap.Ticks,
		Seed:   m.config.Seed,
	}
	if _, err := m.store.SaveRound(round); err != nil {
		m.logger.Warn("score not saved", "error", err)
		return
	}
	m.logger.Debug("score saved", "score", snap.Score, "ticks", snap.Ticks)
}

// saveScreenshot writes the current frame as text and PNG.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}

	m.game.Render(m.screen)
	snap := m.game.Snapshot()

	path, err := snapshot.Save(m.shotDir, time.Now(), m.screen, dinorun.View(snap), snap.Score)
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// boardHeight is the screen height left after the help footer.
func (m Model) boardHeight() int {
	return max(m.height-m.keys.helpHeight(m.help.ShowAll), 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 0 {
		m.screen.DrawTextColored(2, m.screen.Height()-1, m.status, core.ColorGray)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the controller driven by the model.
func (m Model) Game() *dinorun.Controller {
	return m.game
}

// Run starts the Bubble Tea program with the given model. When watchPath is
// set, edits to that config file are applied to the running game.
func Run(m Model, watchPath string) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if watchPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			err := config.Watch(ctx, watchPath, m.logger, func(cfg config.DinoRunConfig) {
				p.Send(ConfigReloadedMsg{Config: cfg})
			})
			if err != nil {
				m.logger.Warn("config watch stopped", "error", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
