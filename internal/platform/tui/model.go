package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetrisus/internal/config"
	"github.com/vovakirdan/tetrisus/internal/core"
	"github.com/vovakirdan/tetrisus/internal/games/tetris"
)

// Options configures a play model.
type Options struct {
	Runtime core.RuntimeConfig
	Tetris  config.TetrisConfig
	Store   tetris.BestScoreStore
	Logger  *log.Logger

	// Session identifies the player in logs and score history.
	Session string

	// OnLock subscribers receive every lock event.
	OnLock []func(tetris.LockEvent)

	// OnGameStart is called for the first game and for every restart.
	OnGameStart func()

	// ScreenshotDir is where ctrl+s writes the screen. Empty disables it.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger

	onGameStart   func()
	screenshotDir string

	releaseTicks int // Ticks without a repeated down key that end a soft drop
	softDropIdle int
	quitting     bool
}

// NewModel creates a model and starts its first game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Session != "" {
		logger = logger.With("session", opts.Session)
	}

	game := tetris.New(
		tetris.WithConfig(opts.Tetris),
		tetris.WithStore(opts.Store),
		tetris.WithLogger(logger),
	)
	for _, fn := range opts.OnLock {
		game.Subscribe(fn)
	}

	m := Model{
		game:          game,
		keys:          NewKeyMapper(DefaultKeyMap()),
		help:          help.New(),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		logger:        logger,
		onGameStart:   opts.OnGameStart,
		screenshotDir: opts.ScreenshotDir,
		releaseTicks:  max(1, opts.Tetris.Input.SoftDropReleaseTicks),
	}
	m.screen = core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-m.helpHeight()))

	game.Reset(cfg)
	m.gameState = game.State()
	m.gameStarted()
	logger.Debug("game started", "seed", cfg.Seed)

	return m
}

// Game returns the running game.
func (m Model) Game() *tetris.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, max(0, m.config.ScreenH-m.helpHeight()))
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.game.SaveBest()
		m.logger.Debug("quit", "score", m.game.Score())
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionSoftDropStart {
		m.softDropIdle = 0
		// Key repeats of a held down key keep the current soft drop going.
		if m.game.SoftDropping() {
			return m, nil
		}
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(0, msg.Height-m.helpHeight()))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.SoftDropping() {
		m.softDropIdle++
		if m.softDropIdle >= m.releaseTicks {
			m.inputFrame.Set(core.ActionSoftDropEnd)
			m.softDropIdle = 0
		}
	}

	restarted := m.inputFrame.Has(core.ActionRestart)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if restarted {
		m.softDropIdle = 0
		m.gameStarted()
		m.logger.Debug("game restarted")
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m Model) gameStarted() {
	if m.onGameStart != nil {
		m.onGameStart()
	}
}

// helpHeight returns the lines taken by the help footer.
func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.Keys().FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
