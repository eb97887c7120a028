// Package amoeboids implements the Amoeboids arcade game: a ship on a
// wrapping plane shoots amoebas that split into smaller, faster amoebas.
// Clearing every amoeba advances the level; touching one ends the game.
package amoeboids

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/amoeboids/internal/config"
	"github.com/vovakirdan/amoeboids/internal/core"
	"github.com/vovakirdan/amoeboids/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "amoeboids"

const gameTitle = "Amoeboids"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI or menu
var difficultyPreset config.DifficultyPreset

// sessionLogger is handed to games created through the registry
var sessionLogger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// SetLogger sets the logger used by games created without WithLogger.
func SetLogger(l *log.Logger) {
	if l != nil {
		sessionLogger = l
	}
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the wall clock used for refire gating and bullet aging.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithDisplay adds an external display fed alongside the built-in HUD.
func WithDisplay(d Display) Option {
	return func(g *Game) {
		g.display = d
	}
}

// WithScene adds an external scene notified of every attach and detach.
func WithScene(s Scene) Option {
	return func(g *Game) {
		g.extScene = s
	}
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithConfig uses cfg instead of loading configuration files.
func WithConfig(cfg config.AmoeboidsConfig) Option {
	return func(g *Game) {
		g.fixedCfg = &cfg
	}
}

// WithDifficulty applies preset instead of the one set by SetDifficultyPreset.
// It has no effect together with WithConfig.
func WithDifficulty(preset config.DifficultyPreset) Option {
	return func(g *Game) {
		g.preset = &preset
	}
}

// Game is the frame orchestrator. It owns the population, the level
// director and the state machine and advances them once per Step.
type Game struct {
	now      func() time.Time
	logger   *log.Logger
	display  Display
	extScene Scene
	fixedCfg *config.AmoeboidsConfig
	preset   *config.DifficultyPreset

	runtime    core.RuntimeConfig
	cfg        config.AmoeboidsConfig
	difficulty *config.DifficultyManager
	bounds     core.Bounds

	rng      *SimpleRNG
	layers   *Layers
	scene    Scene
	hud      *Overlay
	pop      *Population
	policy   SplitPolicy
	director *LevelDirector
	machine  StateMachine

	score int
	tick  uint64
	stars []star
	view  viewport
}

// New creates a game. Reset must be called before Step or Render.
func New(opts ...Option) *Game {
	g := &Game{
		now:    time.Now,
		logger: sessionLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register(GameID, gameTitle, func(preset config.DifficultyPreset) registry.Game {
		if preset == "" {
			return New()
		}
		return New(WithDifficulty(preset))
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return gameTitle
}

// Reset starts a new session in the welcome state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.bounds = worldBounds(g.cfg.World, runtime.ScreenW, runtime.ScreenH)

	// Entities of a previous session leave the external scene first.
	if g.pop != nil {
		g.pop.Clear()
		g.scene.Detach(ShipID)
	}

	g.rng = NewSimpleRNG(runtime.Seed)
	g.layers = NewLayers()
	g.scene = scenes{g.layers}
	if g.extScene != nil {
		g.scene = scenes{g.layers, g.extScene}
	}
	g.hud = &Overlay{}

	tiers := NewTierTable(g.cfg.Amoebas)
	g.pop = NewPopulation(PopulationConfig{
		Tiers:        tiers,
		ShipRadius:   g.cfg.Ship.Radius,
		BulletRadius: g.cfg.Bullets.Radius,
		Refire:       time.Duration(g.cfg.Bullets.RefireMS) * time.Millisecond,
		MaxAge:       time.Duration(g.cfg.Bullets.MaxAgeMS) * time.Millisecond,
	}, g.scene)
	g.policy = NewSplitPolicy(tiers, g.cfg.Amoebas.SpeedRange, g.rng)
	g.director = NewLevelDirector(g.pop, g.rng, g.bounds, tiers, LevelConfig{
		SpawnFactor:  g.cfg.Levels.SpawnFactor,
		SafeDistance: g.cfg.Levels.SafeDistance,
		SpeedRange:   g.cfg.Amoebas.SpeedRange,
	})

	g.tick = 0
	g.stars = makeStars(g.bounds, g.cfg.World.Stars, runtime.Seed)
	g.view = newViewport(g.bounds, runtime.ScreenW, runtime.ScreenH)

	g.machine.Restore(ModeWelcome)
	g.resetSession()
}

// loadConfig resolves configuration: explicit option, then files, then defaults.
func (g *Game) loadConfig() config.AmoeboidsConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := config.LoadAmoeboids(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultAmoeboidsConfig()
	}
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	config.ApplyAmoeboidsPreset(&cfg, preset)
	return cfg
}

// worldBounds sizes the play plane. A zero height follows the terminal's
// aspect ratio, counting a cell as twice as tall as it is wide.
func worldBounds(world config.WorldConfig, screenW, screenH int) core.Bounds {
	width, height := world.Width, world.Height
	if height <= 0 {
		rows := screenH - hudRows
		if screenW > 0 && rows > 0 {
			height = width * float64(rows) * 2 / float64(screenW)
		} else {
			height = width * 3 / 4
		}
	}
	return core.CenteredBounds(width, height)
}

// resetSession zeroes the score, returns to level 1, parks the ship and
// empties the populations. The empty population then places the first wave.
func (g *Game) resetSession() {
	g.score = 0
	g.director.Reset()
	g.pop.Ship().Reset()
	g.pop.Clear()
	g.logger.Info("session reset")

	g.advanceIfCleared()
	g.report()
}

// advanceIfCleared moves to the next level once no amoeba is left.
// Placement may come up short when the ship's buffer swallows every spawn
// zone; the level still counts and the next frame advances again.
func (g *Game) advanceIfCleared() {
	if g.pop.AmoebaCount() > 0 {
		return
	}

	next := g.director.Level() + 1
	g.director.Tune(
		g.difficulty.SafeDistance(g.cfg.Levels.SafeDistance, g.score, next),
		g.difficulty.Speed(1, g.score, next),
	)

	requested := g.director.SpawnCount(next)
	placed := g.director.AdvanceLevel()
	g.logger.Debug("level advanced", "level", g.director.Level(), "requested", requested, "placed", placed)
	if placed < requested {
		g.logger.Warn("level under-populated", "level", g.director.Level(), "requested", requested, "placed", placed)
	}
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	fireConsumed := g.processEdges(in)
	if g.machine.Mode() == ModePlay {
		g.update(in, !fireConsumed)
	}
	g.report()

	result := core.StepResult{State: g.State()}
	if fireConsumed {
		result.Consumed = []core.Action{core.ActionFire}
	}
	return result
}

// processEdges feeds edge-triggered input to the state machine. Fire
// outside play counts as start; it reports whether fire was used that way.
func (g *Game) processEdges(in core.InputFrame) bool {
	mode := g.machine.Mode()
	fireAsStart := in.Has(core.ActionFire) && (mode == ModeWelcome || mode == ModePause)

	// Start wins over pause only when it leads somewhere
	started := false
	if in.Has(core.ActionConfirm) || fireAsStart {
		started = g.transition(EventStart)
	}
	if !started && in.Has(core.ActionPause) {
		g.transition(EventPause)
	}
	return fireAsStart
}

// transition applies a state machine event and its side effects. It reports
// whether the mode changed.
func (g *Game) transition(ev Event) bool {
	from := g.machine.Mode()
	changed, reset := g.machine.Fire(ev)
	if !changed {
		return false
	}
	if reset {
		g.resetSession()
	}

	mode := g.machine.Mode()
	g.logger.Debug("mode changed", "from", from, "to", mode, "event", ev)
	if mode == ModeOver {
		g.logger.Info("game over", "score", g.score, "level", g.director.Level())
	}
	g.hud.SetMode(mode)
	if g.display != nil {
		g.display.SetMode(mode)
	}
	return true
}

// update runs the play-state part of a frame.
func (g *Game) update(in core.InputFrame, fireAllowed bool) {
	now := g.now()
	ship := g.pop.Ship()

	// 1. Ship controls, integration and firing
	if in.Has(core.ActionTurnLeft) {
		ship.Turn(-g.cfg.Ship.TurnRate)
	}
	if in.Has(core.ActionTurnRight) {
		ship.Turn(g.cfg.Ship.TurnRate)
	}
	if in.Has(core.ActionAccelerate) {
		ship.Accelerate(g.cfg.Ship.Acceleration)
	}
	if in.Has(core.ActionDecelerate) {
		ship.Accelerate(-g.cfg.Ship.Deceleration)
	}
	ship.Integrate(g.bounds)
	if fireAllowed && in.Has(core.ActionFire) {
		g.pop.SpawnBullet(now, ship.Pos, g.cfg.Bullets.Speed, ship.Heading, ship.Vel)
	}

	// 2-3. Bullets move, then the old ones expire with their detectors
	g.pop.IntegrateBullets()
	g.pop.AgeAndExpireBullets(now)

	// 4. Amoebas drift and wrap
	g.pop.IntegrateAmoebas(g.bounds)

	// 5. Touching an amoeba ends the game; the amoeba survives
	targets := g.pop.AmoebaBodies()
	if len(g.pop.ShipDetector().Evaluate(g.pop, targets)) > 0 {
		g.transition(EventCollision)
		return
	}

	// 6. Every bullet against the same pre-resolution snapshot
	var hitAmoebas, scoringBullets []EntityID
	seen := make(map[EntityID]bool)
	for _, d := range g.pop.BulletDetectors() {
		hits := d.Evaluate(g.pop, targets)
		if len(hits) == 0 {
			continue
		}
		scoringBullets = append(scoringBullets, d.Source())
		for _, id := range hits {
			if !seen[id] {
				seen[id] = true
				hitAmoebas = append(hitAmoebas, id)
			}
		}
	}

	// 7. Each hit amoeba dies and splits once
	for _, id := range hitAmoebas {
		g.destroyAmoeba(id)
	}

	// 8. Each scoring bullet goes, detector included
	for _, id := range scoringBullets {
		g.pop.DestroyBullet(id)
	}

	// 9. Cleared wave
	g.advanceIfCleared()
}

// destroyAmoeba removes one amoeba, scores it and spawns its children.
func (g *Game) destroyAmoeba(id EntityID) {
	a, ok := g.pop.DestroyAmoeba(id)
	if !ok {
		return
	}
	children, award := g.policy.OnAmoebaDestroyed(a.Tier)
	g.score += award
	for _, c := range children {
		g.pop.SpawnAmoeba(c.Tier, a.Pos, c.Velocity)
	}
}

// report pushes score, level and mode to the HUD and the external display.
func (g *Game) report() {
	mode := g.machine.Mode()
	g.hud.SetScore(g.score)
	g.hud.SetLevel(g.director.Level())
	g.hud.SetMode(mode)
	if g.display != nil {
		g.display.SetScore(g.score)
		g.display.SetMode(mode)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	mode := g.machine.Mode()
	return core.GameState{
		Score:    g.score,
		Level:    g.director.Level(),
		GameOver: mode == ModeOver,
		Paused:   mode == ModePause,
	}
}

// Mode returns the current macro state.
func (g *Game) Mode() Mode {
	return g.machine.Mode()
}

// Bounds returns the play plane.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Resize adapts the projection to a new screen size without touching the
// simulation.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.view = newViewport(g.bounds, width, height)
}

// DumpState encodes the current snapshot for offline inspection.
func (g *Game) DumpState() ([]byte, error) {
	snap := g.Snapshot()
	return snap.Encode()
}
