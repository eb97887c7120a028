package amoeboids

import (
	"testing"
	"time"

	"github.com/vovakirdan/amoeboids/internal/config"
	"github.com/vovakirdan/amoeboids/internal/core"
)

// defaultTiers returns the big/medium/small table.
func defaultTiers() TierTable {
	return NewTierTable(config.DefaultAmoeboidsConfig().Amoebas)
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// recordingScene counts attach and detach calls per entity.
type recordingScene struct {
	attached map[EntityID]int
	detached map[EntityID]int
	kinds    map[EntityID]Kind
}

func newRecordingScene() *recordingScene {
	return &recordingScene{
		attached: make(map[EntityID]int),
		detached: make(map[EntityID]int),
		kinds:    make(map[EntityID]Kind),
	}
}

func (s *recordingScene) Attach(id EntityID, kind Kind) {
	s.attached[id]++
	s.kinds[id] = kind
}

func (s *recordingScene) Detach(id EntityID) {
	s.detached[id]++
}

// recordingDisplay keeps the last values it was given.
type recordingDisplay struct {
	score int
	mode  Mode
	calls int
}

func (d *recordingDisplay) SetScore(score int) {
	d.score = score
	d.calls++
}

func (d *recordingDisplay) SetMode(mode Mode) {
	d.mode = mode
	d.calls++
}

// testConfig is the default configuration on an 800x600 plane.
func testConfig() config.AmoeboidsConfig {
	cfg := config.DefaultAmoeboidsConfig()
	cfg.World.Height = 600
	return cfg
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame returns a reset game driven by a fake clock.
func newTestGame(t *testing.T, seed int64, opts ...Option) (*Game, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	all := append([]Option{WithConfig(testConfig()), WithClock(clock.Now)}, opts...)
	g := New(all...)
	g.Reset(testRuntime(seed))
	return g, clock
}

func testPopulation(scene Scene) *Population {
	return NewPopulation(PopulationConfig{
		Tiers:        defaultTiers(),
		ShipRadius:   10,
		BulletRadius: 2,
		Refire:       200 * time.Millisecond,
		MaxAge:       3000 * time.Millisecond,
	}, scene)
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// clearAmoebas empties the population without going through a frame.
func clearAmoebas(g *Game) {
	for _, a := range g.pop.Amoebas() {
		g.pop.DestroyAmoeba(a.ID)
	}
}
