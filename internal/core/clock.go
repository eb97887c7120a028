package core

// Clock dispatches a frame callback on every host tick while running.
//
// The host (a Bubble Tea tick command, an SSH session, or a test loop) calls
// Tick at its own cadence; Clock only decides whether the frame runs. Pause
// takes effect at the next Tick, never in the middle of a frame.
type Clock struct {
	running bool
	frames  uint64
	onTick  func()
}

// NewClock creates a stopped clock that calls onTick for every dispatched frame.
func NewClock(onTick func()) *Clock {
	return &Clock{onTick: onTick}
}

// Start resumes frame dispatch.
func (c *Clock) Start() {
	c.running = true
}

// Pause stops frame dispatch from the next tick on.
func (c *Clock) Pause() {
	c.running = false
}

// Running reports whether frames are being dispatched.
func (c *Clock) Running() bool {
	return c.running
}

// Frames returns the number of frames dispatched so far.
func (c *Clock) Frames() uint64 {
	return c.frames
}

// Tick runs one frame if the clock is running and reports whether it did.
func (c *Clock) Tick() bool {
	if !c.running || c.onTick == nil {
		return false
	}
	c.frames++
	c.onTick()
	return true
}
