package sim

import "time"

// Loop is what a FrameDriver drives.
type Loop interface {
	// Playing reports whether gameplay should advance.
	Playing() bool
	// Update advances gameplay by dt.
	Update(dt time.Duration)
	// Ambient animates background effects while gameplay is gated.
	Ambient(dt time.Duration)
}

// FrameDriver is the per-refresh entry point of a game. It turns display
// timestamps into time steps and dispatches them to the Loop.
type FrameDriver struct {
	loop Loop

	// FixedStep, when positive, splits every frame into equal sub-steps and
	// carries the remainder to the next frame.
	FixedStep time.Duration
	// MaxDelta, when positive, caps a single frame's elapsed time.
	MaxDelta time.Duration

	clock  FrameClock
	acc    time.Duration
	frames uint64
}

// FrameClock turns monotonic display timestamps into frame deltas.
// The zero value is ready to use.
type FrameClock struct {
	last    time.Duration
	started bool
}

// Delta returns the time since the previous timestamp. The first timestamp
// and any timestamp earlier than the previous one yield zero.
func (c *FrameClock) Delta(ts time.Duration) time.Duration {
	var dt time.Duration
	if c.started && ts > c.last {
		dt = ts - c.last
	}
	if !c.started || ts > c.last {
		c.last = ts
	}
	c.started = true
	return dt
}

// Reset makes the next timestamp count as the first.
func (c *FrameClock) Reset() {
	*c = FrameClock{}
}

// NewFrameDriver returns a driver for l with a variable time step.
func NewFrameDriver(l Loop) *FrameDriver {
	return &FrameDriver{loop: l}
}

// Frame is called once per display refresh with a monotonic timestamp.
// The first frame and any timestamp earlier than the previous one advance by zero.
func (d *FrameDriver) Frame(ts time.Duration) {
	d.Advance(d.clock.Delta(ts))
}

// Advance runs the loop for an explicit elapsed time. Hosts that measure
// time themselves (the terminal front end does, through a FrameClock) call
// it directly.
func (d *FrameDriver) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if d.MaxDelta > 0 && dt > d.MaxDelta {
		dt = d.MaxDelta
	}
	d.frames++
	if d.FixedStep <= 0 {
		d.step(dt)
		return
	}
	d.acc += dt
	for d.acc >= d.FixedStep {
		d.step(d.FixedStep)
		d.acc -= d.FixedStep
	}
}

func (d *FrameDriver) step(dt time.Duration) {
	if d.loop.Playing() {
		d.loop.Update(dt)
		return
	}
	d.loop.Ambient(dt)
}

// Frames returns how many frames were driven.
func (d *FrameDriver) Frames() uint64 {
	return d.frames
}

// Reset forgets the previous timestamp and any carried remainder.
func (d *FrameDriver) Reset() {
	d.clock.Reset()
	d.acc = 0
}
