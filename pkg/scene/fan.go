package scene

import (
	"math"
)

// DefaultFanStep is the blade advance per rendered frame, in degrees
const DefaultFanStep = 0.5

// Fan is the ceiling fan's on/off state and blade angle.
//
// The angle accumulates without bound in float64, which stays exact for
// 0.5 degree steps far beyond any realistic session; RenderAngle reduces it.
type Fan struct {
	on    bool
	angle float64

	step             float64
	degreesPerSecond float64
}

// NewFan returns a stopped fan. If degreesPerSecond is positive the blades
// advance by elapsed time instead of by a fixed step per frame.
func NewFan(step, degreesPerSecond float64) *Fan {
	if step <= 0 {
		step = DefaultFanStep
	}
	return &Fan{step: step, degreesPerSecond: degreesPerSecond}
}

// Toggle switches the fan on or off immediately
func (f *Fan) Toggle() {
	f.on = !f.on
}

// SetOn forces the fan state
func (f *Fan) SetOn(on bool) {
	f.on = on
}

// On reports whether the blades are spinning
func (f *Fan) On() bool {
	return f.on
}

// Angle returns the raw accumulated blade angle in degrees
func (f *Fan) Angle() float64 {
	return f.angle
}

// Advance moves the blades for one rendered frame. It is a no-op while off.
func (f *Fan) Advance(dt float32) {
	if !f.on {
		return
	}
	if f.degreesPerSecond > 0 {
		f.angle += f.degreesPerSecond * float64(dt)
		return
	}
	f.angle += f.step
}

// RenderAngle is the angle the blades are drawn at: 0 while off, otherwise
// the accumulator reduced to [0, 360).
func (f *Fan) RenderAngle() float32 {
	if !f.on {
		return 0
	}
	a := math.Mod(f.angle, 360)
	if a < 0 {
		a += 360
	}
	return float32(a)
}
