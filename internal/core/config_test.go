package core

import "testing"

func TestRuntimeConfigNormalized(t *testing.T) {
	tests := []struct {
		name     string
		in       RuntimeConfig
		expected RuntimeConfig
	}{
		{"zero", RuntimeConfig{}, DefaultConfig()},
		{"keeps size", RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 9}, RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 9}},
		{"half a size", RuntimeConfig{ScreenW: 120, TickRate: 30}, RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}},
		{"negative rate", RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: -1, Seed: 3}, RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalized(); got != tc.expected {
				t.Errorf("Normalized() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestGameStateStopped(t *testing.T) {
	if (GameState{Score: 10}).Stopped() {
		t.Error("running game should not be stopped")
	}
	if !(GameState{Paused: true}).Stopped() || !(GameState{GameOver: true}).Stopped() {
		t.Error("paused or over game should be stopped")
	}
}
