package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/amoeboids/internal/core"
	"github.com/vovakirdan/amoeboids/internal/registry"
	"github.com/vovakirdan/amoeboids/internal/storage"
)

// DefaultLatchHoldTicks is how long a key press stays held when the
// terminal sends no repeat.
const DefaultLatchHoldTicks = 12

// Options configures a GameModel.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger

	// LatchHoldTicks is the number of frames a held control stays down
	// after its last key event.
	LatchHoldTicks int

	// ScreenshotDir receives ctrl+s captures. Empty means ~/.amoeboids/screenshots.
	ScreenshotDir string

	// Standalone makes Back quit outright instead of asking for the menu.
	Standalone bool

	// Renderer styles the frames. Nil uses the local terminal.
	Renderer *lipgloss.Renderer
}

// runner owns the per-session frame state. The frame clock calls back into
// it, so it lives behind a pointer that survives Bubble Tea's model copies.
type runner struct {
	game    registry.Game
	store   *storage.Store
	logger  *log.Logger
	latches core.Latches
	hold    int64
	edges   core.InputFrame
	clock   *core.Clock
	tick    int64
	state   core.GameState
	run     storage.Run
	saved   bool
}

func newRunner(game registry.Game, opts Options) *runner {
	hold := opts.LatchHoldTicks
	if hold <= 0 {
		hold = DefaultLatchHoldTicks
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &runner{
		game:   game,
		store:  opts.Store,
		logger: logger,
		hold:   int64(hold),
		edges:  core.NewInputFrame(),
		run:    storage.NewRun(game.ID()),
	}
	r.clock = core.NewClock(r.frame)
	return r
}

// press latches held controls and queues edge actions for the next frame.
func (r *runner) press(a core.Action) {
	if a.Held() {
		r.latches.Press(a, r.tick+1+r.hold)
		return
	}
	r.edges.Set(a)
}

// frame steps the game once with the latched controls and queued edges.
func (r *runner) frame() {
	r.tick++
	in := r.edges.Clone()
	r.edges.Clear()
	r.latches.Apply(&in, r.tick)

	result := r.game.Step(in)
	for _, a := range result.Consumed {
		r.latches.Release(a)
	}
	r.track(result.State)
}

// track saves each finished run once and starts a new run record when the
// game leaves its game over screen.
func (r *runner) track(state core.GameState) {
	prev := r.state
	r.state = state

	if prev.GameOver && !state.GameOver {
		r.run = storage.NewRun(r.game.ID())
		r.saved = false
	}
	if !state.GameOver || r.saved {
		return
	}
	r.saved = true
	if state.Score <= 0 || r.store == nil {
		return
	}

	r.run.Score = state.Score
	r.run.Level = state.Level
	if _, err := r.store.SaveRun(r.run); err != nil {
		r.logger.Warn("could not save score", "run", r.run.ID, "err", err)
		return
	}
	r.logger.Info("score saved", "run", r.run.ID, "score", state.Score, "level", state.Level)
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	r          *runner
	screen     *core.Screen
	painter    Painter
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	shotDir    string
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = cfg.Normalized()

	return GameModel{
		r:          newRunner(game, opts),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:    NewPainter(opts.Renderer),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		shotDir:    opts.ScreenshotDir,
		standalone: opts.Standalone,
	}
}

// Init resets the game and starts the frame clock.
func (m GameModel) Init() tea.Cmd {
	m.r.game.Reset(m.config)
	m.r.state = m.r.game.State()
	m.r.clock.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		// Keys released while unfocused are never reported
		m.r.clock.Pause()
		m.r.latches.ReleaseAll()
		return m, nil

	case tea.FocusMsg:
		m.r.clock.Start()
		return m, nil

	case TickMsg:
		m.r.clock.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		if !m.r.state.Stopped() {
			return m, nil
		}
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, tea.Quit
	}

	m.r.press(action)
	return m, nil
}

// handleResize processes window resize events. Games that can follow the
// new size keep their session; others restart.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if rs, ok := m.r.game.(registry.Resizer); ok {
		rs.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.r.state.GameOver {
		m.r.game.Reset(m.config)
		m.r.state = m.r.game.State()
	}
	return m, nil
}

// saveScreenshot writes the current screen as text and, when the game can
// dump its state, a binary snapshot next to it.
func (m *GameModel) saveScreenshot() {
	m.r.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.r.logger.Warn("no home directory for screenshots", "err", err)
			return
		}
		dir = filepath.Join(home, ".amoeboids", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.r.logger.Warn("could not create screenshot directory", "dir", dir, "err", err)
		return
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.r.game.ID(), time.Now().Format("20060102_150405")))
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.r.logger.Warn("could not save screenshot", "err", err)
		return
	}

	if d, ok := m.r.game.(registry.StateDumper); ok {
		data, err := d.DumpState()
		if err == nil {
			err = os.WriteFile(base+".msgpack", data, 0o600)
		}
		if err != nil {
			m.r.logger.Warn("could not dump state", "err", err)
			return
		}
	}
	m.r.logger.Debug("screenshot saved", "path", base)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.r.game.Render(m.screen)
	if !m.r.clock.Running() {
		m.screen.DrawTextCenteredWithColor(m.screen.Height()-1, " unfocused ", core.ColorYellow)
	}
	return m.painter.Paint(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Standalone = true
	_, err := RunGame(NewGameModel(game, cfg, opts))
	return err
}

// RunGame runs a prepared model and reports whether the player asked to go
// back to the menu.
func RunGame(model GameModel) (backToMenu bool, err error) {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
