// Package registry maps game ids to factories. Games register in init(), so
// the CLI and the SSH server create sessions without importing a game's
// constructor options.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/amoeboids/internal/config"
	"github.com/vovakirdan/amoeboids/internal/core"
)

// Game is what the terminal platform drives. Implementations hold pure
// simulation state; the platform owns input mapping, timing and output.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// scores table (e.g. "amoeboids").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh session sized to cfg.
	Reset(cfg core.RuntimeConfig)

	// Step runs one frame with the latched and edge input for that frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a cleared screen.
	Render(dst *core.Screen)

	// State reports score, level and whether the game is paused or over.
	State() core.GameState
}

// Resizer is implemented by games that adapt to a new screen size without
// losing the running session. Games without it are Reset on resize.
type Resizer interface {
	Resize(width, height int)
}

// StateDumper is implemented by games that can serialize their full state
// for offline inspection.
type StateDumper interface {
	DumpState() ([]byte, error)
}

// Factory creates a game at a difficulty preset. The empty preset falls back
// to the process-wide default.
type Factory func(preset config.DifficultyPreset) Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game under id. It panics on a duplicate id.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// Create builds a new session of game id at preset.
func Create(id string, preset config.DifficultyPreset) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(preset), nil
}

// Title returns the display name registered for id.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.title, ok
}
