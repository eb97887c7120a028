package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/amoeboids/internal/config"
	"github.com/vovakirdan/amoeboids/internal/core"
	"github.com/vovakirdan/amoeboids/internal/games/amoeboids"
	"github.com/vovakirdan/amoeboids/internal/storage"
)

// scriptedGame records its inputs and reports whatever state the test sets.
type scriptedGame struct {
	inputs  []core.InputFrame
	state   core.GameState
	resets  int
	resized [2]int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return g.state
}

func (g *scriptedGame) Resize(width, height int) {
	g.resized = [2]int{width, height}
}

func (g *scriptedGame) DumpState() ([]byte, error) {
	return []byte{0x80}, nil
}

func (g *scriptedGame) last() core.InputFrame {
	return g.inputs[len(g.inputs)-1]
}

func newTestModel(t *testing.T, game *scriptedGame, opts Options) GameModel {
	t.Helper()
	m := NewGameModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, opts)
	m.Init()
	return m
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestHeldKeyLatchesForHoldTicks(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(t, game, Options{LatchHoldTicks: 3})

	m = send(t, m, runeKey('w'))
	for range 4 {
		m = send(t, m, TickMsg{})
	}

	for i, in := range game.inputs {
		held := in.Has(core.ActionAccelerate)
		if expected := i < 3; held != expected {
			t.Errorf("frame %d: accelerate = %v, expected %v", i+1, held, expected)
		}
	}
}

func TestRepeatExtendsLatch(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(t, game, Options{LatchHoldTicks: 2})

	m = send(t, m, runeKey('d'))
	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey('d'))
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	held := 0
	for _, in := range game.inputs {
		if in.Has(core.ActionTurnRight) {
			held++
		}
	}
	if held != 3 {
		t.Errorf("turn right held for %d frames, expected 3", held)
	}
}

func TestEdgeActionsDeliveredOnce(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(t, game, Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	if !game.inputs[0].Has(core.ActionConfirm) || !game.inputs[0].Has(core.ActionPause) {
		t.Errorf("first frame = %v, expected confirm and pause", game.inputs[0].Actions)
	}
	if game.last().Has(core.ActionConfirm) || game.last().Has(core.ActionPause) {
		t.Errorf("second frame = %v, expected no edges", game.last().Actions)
	}
}

func TestStartingTapDoesNotShoot(t *testing.T) {
	cfg := config.DefaultAmoeboidsConfig()
	cfg.World.Height = 600
	game := amoeboids.New(amoeboids.WithConfig(cfg))
	m := NewGameModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}, Options{})
	m.Init()

	ticks := func(n int) {
		for range n {
			m = send(t, m, TickMsg{})
		}
	}

	m = send(t, m, runeKey(' '))
	ticks(3)
	snap := game.Snapshot()
	if game.Mode() != amoeboids.ModePlay || len(snap.Bullets) != 0 {
		t.Fatalf("after a starting tap: mode %v, %d bullets, expected play with none", game.Mode(), len(snap.Bullets))
	}

	m = send(t, m, runeKey('p'))
	ticks(1)
	m = send(t, m, runeKey(' '))
	ticks(3)
	snap = game.Snapshot()
	if game.Mode() != amoeboids.ModePlay || len(snap.Bullets) != 0 {
		t.Fatalf("after a resuming tap: mode %v, %d bullets, expected play with none", game.Mode(), len(snap.Bullets))
	}

	m = send(t, m, runeKey(' '))
	ticks(1)
	if n := len(game.Snapshot().Bullets); n != 1 {
		t.Errorf("tap during play shot %d bullets, expected 1", n)
	}
}

func TestBlurPausesFrames(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(t, game, Options{})

	m = send(t, m, runeKey(' '))
	m = send(t, m, tea.BlurMsg{})
	m = send(t, m, TickMsg{})
	if len(game.inputs) != 0 {
		t.Fatalf("%d frames ran while unfocused", len(game.inputs))
	}
	if !strings.Contains(m.View(), "unfocused") {
		t.Error("view should flag the unfocused state")
	}

	m = send(t, m, tea.FocusMsg{})
	m = send(t, m, TickMsg{})
	if len(game.inputs) != 1 {
		t.Fatalf("%d frames after focus, expected 1", len(game.inputs))
	}
	if game.last().Has(core.ActionFire) {
		t.Error("latch survived losing focus")
	}
}

func TestScoreSavedOncePerRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m := newTestModel(t, game, Options{Store: store})

	game.state = core.GameState{Score: 235, Level: 3, GameOver: true}
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	// A new run after leaving the game over screen
	game.state = core.GameState{Level: 2}
	m = send(t, m, TickMsg{})
	game.state = core.GameState{Score: 40, Level: 2, GameOver: true}
	m = send(t, m, TickMsg{})

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d runs, expected 2", len(scores))
	}
	if scores[0].Score != 235 || scores[0].Level != 3 {
		t.Errorf("best run = %+v", scores[0])
	}
	if scores[0].RunID == scores[1].RunID {
		t.Error("runs share an id")
	}
}

func TestBackOnlyWhenStopped(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(t, game, Options{})

	m = send(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back accepted during play")
	}

	game.state.Paused = true
	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back refused while paused")
	}

	standalone := newTestModel(t, &scriptedGame{}, Options{Standalone: true})
	standalone.r.state.GameOver = true
	standalone = send(t, standalone, runeKey('b'))
	if !standalone.IsQuitting() {
		t.Error("standalone back should quit")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, &scriptedGame{}, Options{})
	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(GameModel).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestResizeKeepsSession(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(t, game, Options{})

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("game reset %d times, expected only the initial reset", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestScreenshotWritesTextAndState(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, &scriptedGame{}, Options{ScreenshotDir: dir})

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var txt, dump bool
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".txt"):
			txt = true
			data, _ := os.ReadFile(filepath.Join(dir, e.Name()))
			if !strings.Contains(string(data), "scripted") {
				t.Errorf("screenshot = %q", data)
			}
		case strings.HasSuffix(e.Name(), ".msgpack"):
			dump = true
		}
	}
	if !txt || !dump {
		t.Errorf("screenshot files: text %v, state %v", txt, dump)
	}
}
