package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gesture-snake/internal/control"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/games/snake"
)

// helpHeight is the number of rows reserved under the board.
const helpHeight = 1

// Steerable is implemented by sources the keyboard can drive directly.
type Steerable interface {
	Swipe(d core.Direction)
	TogglePinch()
}

// Options configures the play screen.
type Options struct {
	Game   *snake.Game
	Buffer *control.Buffer
	Steer  Steerable          // Nil unless the source is the virtual hand
	Cancel context.CancelFunc // Stops the capture loop, may be nil
	Config core.RuntimeConfig
	Logger *log.Logger

	// InputTTY reads keys from the controlling terminal, for when standard
	// input carries landmarks.
	InputTTY bool
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game   *snake.Game
	screen *core.Screen
	buf    *control.Buffer
	steer  Steerable
	cancel context.CancelFunc
	logger *log.Logger

	keys KeyMap
	help help.Model

	config        core.RuntimeConfig
	gameState     core.GameState
	quitRequested bool // Delivered to the game on the next tick
	quitting      bool
}

// NewModel creates the play screen model.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	keys.SetSteering(opts.Steer != nil)

	return Model{
		game:   opts.Game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		buf:    opts.Buffer,
		steer:  opts.Steer,
		cancel: opts.Cancel,
		logger: logger.WithPrefix("game"),
		keys:   keys,
		help:   help.New(),
		config: cfg,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed)
	return tickCmd(m.game.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.stop()
	case key.Matches(msg, m.keys.Quit):
		m.quitRequested = true
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		// Same effect as showing an UP gesture
		if m.gameState.GameOver {
			m.buf.Put(core.DirUp)
		}
		return m, nil
	case key.Matches(msg, m.keys.Pinch):
		m.steer.TogglePinch()
		return m, nil
	}

	if d := m.keys.Direction(msg); d != core.DirNone {
		m.steer.Swipe(d)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// the board is re-centered on the next frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick with the buffered input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.buf.Input(m.quitRequested)
	result := m.game.Tick(in)

	switch {
	case result.State.GameOver && !m.gameState.GameOver:
		m.logger.Info("game over", "score", result.State.Score)
	case !result.State.GameOver && m.gameState.GameOver:
		m.logger.Info("restart")
	}
	m.gameState = result.State

	if !result.Running {
		return m.stop()
	}
	return m, tickCmd(result.TickRate)
}

// stop cancels the capture loop and leaves the program.
func (m Model) stop() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.cancel != nil {
		m.cancel()
	}
	m.logger.Info("quit", "score", m.gameState.Score)
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the game ends.
func Run(opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.InputTTY {
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	p := tea.NewProgram(NewModel(opts), progOpts...)
	_, err := p.Run()
	return err
}
