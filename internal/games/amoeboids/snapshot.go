package amoeboids

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// AmoebaState is one amoeba in a Snapshot.
type AmoebaState struct {
	ID   uint32  `msgpack:"id"`
	Tier int     `msgpack:"tier"`
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	VX   float64 `msgpack:"vx"`
	VY   float64 `msgpack:"vy"`
}

// BulletState is one bullet in a Snapshot.
type BulletState struct {
	ID      uint32  `msgpack:"id"`
	X       float64 `msgpack:"x"`
	Y       float64 `msgpack:"y"`
	VX      float64 `msgpack:"vx"`
	VY      float64 `msgpack:"vy"`
	Spawned int64   `msgpack:"spawned"` // Unix milliseconds
}

// Snapshot captures the complete game state for determinism testing and
// state dumps.
type Snapshot struct {
	Tick  uint64 `msgpack:"tick"`
	Mode  string `msgpack:"mode"`
	Score int    `msgpack:"score"`
	Level int    `msgpack:"level"`

	ShipX       float64 `msgpack:"ship_x"`
	ShipY       float64 `msgpack:"ship_y"`
	ShipVX      float64 `msgpack:"ship_vx"`
	ShipVY      float64 `msgpack:"ship_vy"`
	ShipHeading float64 `msgpack:"ship_heading"`

	Amoebas []AmoebaState `msgpack:"amoebas"`
	Bullets []BulletState `msgpack:"bullets"`

	RNGState uint64 `msgpack:"rng_state"`
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	ship := g.pop.Ship()
	snap := Snapshot{
		Tick:        g.tick,
		Mode:        g.machine.Mode().String(),
		Score:       g.score,
		Level:       g.director.Level(),
		ShipX:       ship.Pos.X,
		ShipY:       ship.Pos.Y,
		ShipVX:      ship.Vel.X,
		ShipVY:      ship.Vel.Y,
		ShipHeading: ship.Heading,
		RNGState:    g.rng.State(),
	}

	for _, a := range g.pop.Amoebas() {
		snap.Amoebas = append(snap.Amoebas, AmoebaState{
			ID:   uint32(a.ID),
			Tier: int(a.Tier),
			X:    a.Pos.X,
			Y:    a.Pos.Y,
			VX:   a.Vel.X,
			VY:   a.Vel.Y,
		})
	}
	for _, b := range g.pop.Bullets() {
		snap.Bullets = append(snap.Bullets, BulletState{
			ID:      uint32(b.ID),
			X:       b.Pos.X,
			Y:       b.Pos.Y,
			VX:      b.Vel.X,
			VY:      b.Vel.Y,
			Spawned: b.Spawned.UnixMilli(),
		})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Bullet spawn times are wall-clock dependent and left out.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Mode {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + math.Float64bits(snap.ShipY)
	h = h*31 + math.Float64bits(snap.ShipVX)
	h = h*31 + math.Float64bits(snap.ShipVY)
	h = h*31 + math.Float64bits(snap.ShipHeading)

	for _, a := range snap.Amoebas {
		h = h*31 + uint64(a.ID)
		h = h*31 + uint64(a.Tier) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(a.X)
		h = h*31 + math.Float64bits(a.Y)
		h = h*31 + math.Float64bits(a.VX)
		h = h*31 + math.Float64bits(a.VY)
	}

	for _, b := range snap.Bullets {
		h = h*31 + uint64(b.ID)
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.VX)
		h = h*31 + math.Float64bits(b.VY)
	}

	h = h*31 + snap.RNGState

	return h
}

// Encode serializes the snapshot with MessagePack.
func (snap *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("amoeboids: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("amoeboids: decode snapshot: %w", err)
	}
	return snap, nil
}
