package core

import "sync/atomic"

// Latches tracks which held controls are currently down.
//
// Input delivery writes a latch and the frame loop reads it once per tick; each
// key is an independent atomic word so the writer and reader never need a lock.
// Terminals do not report key releases, so a press holds the latch until a
// deadline (in ticks) that key auto-repeat keeps pushing forward.
type Latches struct {
	until [actionCount]atomic.Int64
}

// Press holds action a until tick deadline (exclusive). Non-held actions are ignored.
func (l *Latches) Press(a Action, deadline int64) {
	if !a.Held() {
		return
	}
	l.until[a].Store(deadline)
}

// Release drops the latch for a.
func (l *Latches) Release(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	l.until[a].Store(0)
}

// ReleaseAll drops every latch.
func (l *Latches) ReleaseAll() {
	for i := range l.until {
		l.until[i].Store(0)
	}
}

// Down reports whether a is held at tick now.
func (l *Latches) Down(a Action, now int64) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return now < l.until[a].Load()
}

// Apply adds every latch held at tick now to the frame.
func (l *Latches) Apply(frame *InputFrame, now int64) {
	for a := ActionNone + 1; a < actionCount; a++ {
		if a.Held() && l.Down(a, now) {
			frame.Set(a)
		}
	}
}
