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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// Options configures a game model.
type Options struct {
	// Config is the loaded configuration. A zero board dimension is fitted
	// to Term.
	Config config.SnakeConfig

	// Term is the terminal size and RNG seed (0 = random based on time).
	Term core.RuntimeConfig

	// Logger receives engine and host logs. Nil discards them.
	Logger *log.Logger

	// Renderer is the lipgloss renderer for the output. Nil uses the default.
	Renderer *lipgloss.Renderer

	// ScreenshotDir is where ctrl+s writes. Empty means ~/.snake/screenshots.
	ScreenshotDir string
}

// session is the mutable state shared by every copy of a Model. The engine
// calls back into it, so it must outlive Bubble Tea's value updates.
type session struct {
	engine    *snake.Engine
	screen    *core.Screen
	lastRound *snake.RoundOver
	paused    bool

	styles     map[int]Styles
	dirty      bool
	frame      string
	frameTheme int
}

// Model is the Bubble Tea model for one game of snake.
type Model struct {
	game          *session
	keys          KeyMap
	help          help.Model
	renderer      *lipgloss.Renderer
	logger        *log.Logger
	term          core.RuntimeConfig
	settings      *SettingsModel // nil when closed
	tickGen       int
	screenshotDir string
	quitting      bool
}

// NewModel creates the engine and wraps it in a model.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	cfg.FitBoard(opts.Term.ScreenW, opts.Term.ScreenH)

	settings, err := cfg.Engine()
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engineOpts := []snake.Option{
		snake.WithLogger(logger),
		snake.WithSpawnAttempts(cfg.SpawnAttempts),
	}
	if opts.Term.Seed != 0 {
		engineOpts = append(engineOpts, snake.WithSeed(opts.Term.Seed))
	}
	engine, err := snake.New(cfg.Board.Width, cfg.Board.Height, cfg.Board.InitialLength, settings, engineOpts...)
	if err != nil {
		return Model{}, err
	}

	g := &session{
		engine: engine,
		screen: core.NewScreen(boardSize(engine.Grid())),
		styles: make(map[int]Styles),
		dirty:  true,
	}
	engine.OnRoundOver(func(r snake.RoundOver) {
		g.lastRound = &r
		g.paused = false
	})
	engine.OnStateChanged(func() {
		g.dirty = true
	})

	h := help.New()
	h.Width = opts.Term.ScreenW

	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	}

	return Model{
		game:          g,
		keys:          DefaultKeyMap(),
		help:          h,
		renderer:      opts.Renderer,
		logger:        logger,
		term:          opts.Term,
		screenshotDir: dir,
	}, nil
}

// Engine returns the hosted engine.
func (m Model) Engine() *snake.Engine {
	return m.game.engine
}

// Init does nothing: the first tick is scheduled by the first direction key.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if m.settings != nil {
		return m.handleSettingsKey(msg)
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionPause:
		m.pause()
	case core.ActionSettings:
		m.pause()
		s := NewSettingsModel(m.game.engine.Config())
		m.settings = &s
	default:
		if d, ok := action.Direction(); ok {
			return m.steer(d)
		}
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	s, result := m.settings.Update(msg, m.keys)
	switch result {
	case SettingsApplied:
		cfg := s.Config()
		if err := m.game.engine.ApplySettings(cfg.Speed, cfg.Theme); err != nil {
			m.logger.Error("apply settings", "error", err)
		}
		m.settings = nil
	case SettingsCancelled:
		m.settings = nil
	default:
		m.settings = &s
	}
	m.game.dirty = true
	return m, nil
}

// pause stops a running game and remembers that the player asked for it.
func (m Model) pause() {
	if m.game.engine.State() == snake.Playing {
		m.game.paused = true
	}
	m.game.engine.HandlePauseInput()
}

// steer forwards a direction. If it starts the game, a new tick loop begins;
// ticks still in flight from an earlier loop are ignored by generation.
func (m Model) steer(d core.Direction) (tea.Model, tea.Cmd) {
	engine := m.game.engine
	wasPlaying := engine.State() == snake.Playing
	engine.HandleDirectionInput(d)
	if wasPlaying || engine.State() != snake.Playing {
		return m, nil
	}

	m.game.lastRound = nil
	m.game.paused = false
	m.tickGen++
	return m, tickCmd(m.tickGen, engine.Config().Speed.Interval())
}

// handleTick advances the engine and schedules the next tick while playing.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	engine := m.game.engine
	if msg.Gen != m.tickGen || engine.State() != snake.Playing {
		return m, nil
	}

	if _, err := engine.Tick(); err != nil {
		m.logger.Error("tick", "error", err)
		return m, nil
	}
	if engine.State() != snake.Playing {
		return m, nil
	}
	// Read the interval each time so a speed change applies from the next tick.
	return m, tickCmd(m.tickGen, engine.Config().Speed.Interval())
}

// handleResize processes window resize events. The board keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.term.ScreenW = msg.Width
	m.term.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// styles returns the cached styles for a theme index.
func (m Model) styles(idx int) Styles {
	st, ok := m.game.styles[idx]
	if !ok {
		st = NewStyles(m.renderer, theme.ByIndex(idx))
		m.game.styles[idx] = st
	}
	return st
}

// themeIndex is the theme to draw with; the settings overlay previews its pick.
func (m Model) themeIndex() int {
	if m.settings != nil {
		return m.settings.Config().Theme
	}
	return m.game.engine.Config().Theme
}

// draw paints the board, and the overlay if open, into the session screen.
func (m Model) draw() {
	g := m.game
	DrawBoard(g.screen, g.engine.Grid(), g.engine.Snapshot())
	if m.settings != nil {
		m.settings.Draw(g.screen)
	}
}

// board returns the styled board, redrawing only after the engine changed.
func (m Model) board() string {
	g := m.game
	idx := m.themeIndex()
	if !g.dirty && g.frame != "" && g.frameTheme == idx {
		return g.frame
	}
	m.draw()
	g.frame = RenderScreen(g.screen, m.styles(idx))
	g.frameTheme = idx
	g.dirty = false
	return g.frame
}

// Status returns the text of the status line.
func (m Model) Status() string {
	snap := m.game.engine.Snapshot()
	line := fmt.Sprintf("score %d  %s", snap.Score, snap.Config.Speed)

	var msg string
	switch {
	case snap.State == snake.Playing:
	case m.game.lastRound != nil && m.game.lastRound.Won():
		msg = fmt.Sprintf("board full! (score %d)  press direction key to start", m.game.lastRound.FinalScore)
	case m.game.lastRound != nil:
		msg = fmt.Sprintf("game over (score %d)  press direction key to start", m.game.lastRound.FinalScore)
	case m.game.paused:
		msg = "pause"
	default:
		msg = "press direction key to start"
	}
	if msg != "" {
		line += "  " + msg
	}
	return line
}

// saveScreenshot saves the current board and status line to a file.
func (m Model) saveScreenshot() {
	m.draw()
	m.game.dirty = true

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("snake_%s.txt", timestamp))
	content := m.game.screen.String() + "\n" + m.Status() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.styles(m.themeIndex())
	w, h := boardSize(m.game.engine.Grid())
	if m.term.ScreenW > 0 && (m.term.ScreenW < w || m.term.ScreenH < h+1) {
		return st.Status.Render(fmt.Sprintf("terminal too small: need %dx%d, have %dx%d",
			w, h+1, m.term.ScreenW, m.term.ScreenH))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.board(),
		st.Status.Render(m.Status()),
		st.Muted.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
