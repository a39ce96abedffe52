package mouse

import (
	"math"

	"github.com/mmsim/micromouse-core/internal/units"
)

// EncoderType distinguishes an encoder that reports total rotation
// since power-on (absolute, wrapping at one revolution) from one that
// reports rotation since the last explicit reset (relative).
type EncoderType int

const (
	EncoderAbsolute EncoderType = iota
	EncoderRelative
)

func (e EncoderType) String() string {
	if e == EncoderRelative {
		return "relative"
	}
	return "absolute"
}

// Wheel is a single drive wheel, placed in world-frame position and
// heading at mouse-build time. All mutable state is guarded by the
// owning Mouse's lock; Wheel itself is not safe for concurrent use.
type Wheel struct {
	initialPosition    units.Cartesian
	initialDirection   units.Angle
	radius             units.Length
	maxAngularVelocity units.AngularVelocity
	encoderType        EncoderType
	ticksPerRevolution float64

	angularVelocity     units.AngularVelocity
	accumulatedRotation units.Angle
	relativeBase        units.Angle
}

func newWheel(position units.Cartesian, direction units.Angle, radius units.Length, maxAngularVelocity units.AngularVelocity, encoderType EncoderType, ticksPerRevolution float64) *Wheel {
	return &Wheel{
		initialPosition:    position,
		initialDirection:   direction,
		radius:             radius,
		maxAngularVelocity: maxAngularVelocity,
		encoderType:        encoderType,
		ticksPerRevolution: ticksPerRevolution,
	}
}

func (w *Wheel) InitialPosition() units.Cartesian          { return w.initialPosition }
func (w *Wheel) InitialDirection() units.Angle              { return w.initialDirection }
func (w *Wheel) Radius() units.Length                       { return w.radius }
func (w *Wheel) MaxAngularVelocity() units.AngularVelocity  { return w.maxAngularVelocity }
func (w *Wheel) EncoderType() EncoderType                   { return w.encoderType }
func (w *Wheel) EncoderTicksPerRevolution() float64         { return w.ticksPerRevolution }
func (w *Wheel) AngularVelocity() units.AngularVelocity     { return w.angularVelocity }
func (w *Wheel) AccumulatedRotation() units.Angle           { return w.accumulatedRotation }

// SetAngularVelocity clamps v to [-maxAngularVelocity, maxAngularVelocity]
// and reports whether clamping occurred, so the caller can surface an
// OutOfRangeError without aborting the write.
func (w *Wheel) SetAngularVelocity(v units.AngularVelocity) (clamped bool) {
	max := w.maxAngularVelocity.Abs()
	if v > max {
		w.angularVelocity = max
		return true
	}
	if v < -max {
		w.angularVelocity = -max
		return true
	}
	w.angularVelocity = v
	return false
}

// accumulateRotation advances the wheel's total rotation by delta,
// called once per integration tick by kinematics.Integrate.
func (w *Wheel) accumulateRotation(delta units.Angle) {
	w.accumulatedRotation += delta
}

// ReadAbsoluteEncoder returns the wheel's absolute encoder reading,
// wrapped to [0, ticksPerRevolution).
func (w *Wheel) ReadAbsoluteEncoder() int {
	total := int(math.Floor(float64(w.accumulatedRotation) / (2 * math.Pi) * w.ticksPerRevolution))
	ticks := int(w.ticksPerRevolution)
	if ticks == 0 {
		return 0
	}
	r := total % ticks
	if r < 0 {
		r += ticks
	}
	return r
}

// ReadRelativeEncoder returns ticks accumulated since the last
// ResetRelativeEncoder call.
func (w *Wheel) ReadRelativeEncoder() int {
	delta := w.accumulatedRotation - w.relativeBase
	return int(math.Floor(float64(delta) / (2 * math.Pi) * w.ticksPerRevolution))
}

// ResetRelativeEncoder zeroes the relative encoder's baseline at the
// wheel's current accumulated rotation.
func (w *Wheel) ResetRelativeEncoder() {
	w.relativeBase = w.accumulatedRotation
}
