package amoeboids

// Mode is the macro state of a session.
type Mode int

const (
	ModeWelcome Mode = iota
	ModePlay
	ModePause
	ModeOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeWelcome:
		return "welcome"
	case ModePlay:
		return "play"
	case ModePause:
		return "pause"
	case ModeOver:
		return "over"
	default:
		return "unknown"
	}
}

// Event drives the state machine.
type Event int

const (
	EventStart     Event = iota // Start/confirm input, or fire outside play
	EventPause                  // Pause input
	EventCollision              // Ship touched an amoeba
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

type edge struct {
	from Mode
	on   Event
}

type target struct {
	to    Mode
	reset bool // The session is reset before entering the target
}

// transitions is the complete legal transition table.
// There is no edge from over to play.
var transitions = map[edge]target{
	{ModeWelcome, EventStart}:  {to: ModePlay},
	{ModePlay, EventPause}:     {to: ModePause},
	{ModePause, EventStart}:    {to: ModePlay},
	{ModePlay, EventCollision}: {to: ModeOver},
	{ModeOver, EventStart}:     {to: ModeWelcome, reset: true},
}

// StateMachine holds the current mode. Events without a table entry are ignored.
type StateMachine struct {
	mode Mode
}

// Mode returns the current mode.
func (m *StateMachine) Mode() Mode {
	return m.mode
}

// Fire applies ev. It reports whether the mode changed and whether the
// transition requires a session reset.
func (m *StateMachine) Fire(ev Event) (changed, reset bool) {
	t, ok := transitions[edge{m.mode, ev}]
	if !ok {
		return false, false
	}
	m.mode = t.to
	return true, t.reset
}

// Restore sets the mode directly; used when starting a fresh session.
func (m *StateMachine) Restore(mode Mode) {
	m.mode = mode
}
