package amoeboids

import "testing"

func TestStateMachineTransitions(t *testing.T) {
	tests := []struct {
		from    Mode
		event   Event
		to      Mode
		changed bool
		reset   bool
	}{
		{ModeWelcome, EventStart, ModePlay, true, false},
		{ModeWelcome, EventPause, ModeWelcome, false, false},
		{ModeWelcome, EventCollision, ModeWelcome, false, false},
		{ModePlay, EventStart, ModePlay, false, false},
		{ModePlay, EventPause, ModePause, true, false},
		{ModePlay, EventCollision, ModeOver, true, false},
		{ModePause, EventStart, ModePlay, true, false},
		{ModePause, EventPause, ModePause, false, false},
		{ModePause, EventCollision, ModePause, false, false},
		{ModeOver, EventStart, ModeWelcome, true, true},
		{ModeOver, EventPause, ModeOver, false, false},
		{ModeOver, EventCollision, ModeOver, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"/"+tc.event.String(), func(t *testing.T) {
			var m StateMachine
			m.Restore(tc.from)
			changed, reset := m.Fire(tc.event)
			if m.Mode() != tc.to {
				t.Errorf("mode = %v, expected %v", m.Mode(), tc.to)
			}
			if changed != tc.changed || reset != tc.reset {
				t.Errorf("changed, reset = %v, %v; expected %v, %v", changed, reset, tc.changed, tc.reset)
			}
		})
	}
}

func TestStateMachineNoOverToPlay(t *testing.T) {
	var m StateMachine
	m.Restore(ModeOver)

	for _, ev := range []Event{EventPause, EventCollision, EventStart} {
		m.Fire(ev)
		if m.Mode() == ModePlay {
			t.Fatalf("reached play from over via %v", ev)
		}
	}
	if m.Mode() != ModeWelcome {
		t.Errorf("mode = %v, expected welcome", m.Mode())
	}
}

func TestStateMachineStartsInWelcome(t *testing.T) {
	var m StateMachine
	if m.Mode() != ModeWelcome {
		t.Errorf("zero StateMachine mode = %v, expected welcome", m.Mode())
	}
}
