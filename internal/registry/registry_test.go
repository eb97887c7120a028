package registry

import (
	"testing"

	"github.com/vovakirdan/amoeboids/internal/config"
	"github.com/vovakirdan/amoeboids/internal/core"
)

type stubGame struct {
	id     string
	preset config.DifficultyPreset
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stubFactory(id string) Factory {
	return func(preset config.DifficultyPreset) Game {
		return &stubGame{id: id, preset: preset}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("registry-test", "Registry Test", stubFactory("registry-test"))

	title, ok := Title("registry-test")
	if !ok || title != "Registry Test" {
		t.Errorf("Title() = %q, %v, expected %q, true", title, ok, "Registry Test")
	}

	g, err := Create("registry-test", config.DifficultyHard)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stub, ok := g.(*stubGame)
	if !ok {
		t.Fatalf("Create returned %T", g)
	}
	if stub.id != "registry-test" || stub.preset != config.DifficultyHard {
		t.Errorf("Create built %+v, expected id registry-test at hard", stub)
	}

	other, _ := Create("registry-test", "")
	if other == g {
		t.Error("each Create should build a new game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game", ""); err == nil {
		t.Error("Create of an unknown id should fail")
	}
	if _, ok := Title("no-such-game"); ok {
		t.Error("unknown id should have no title")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registry-dup", "Dup", stubFactory("registry-dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("registry-dup", "Dup", stubFactory("registry-dup"))
}
