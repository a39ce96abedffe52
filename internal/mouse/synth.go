package mouse

import (
	"math"

	"github.com/mmsim/micromouse-core/internal/kinematics"
	"github.com/mmsim/micromouse-core/internal/simerrors"
	"github.com/mmsim/micromouse-core/internal/units"
)

// wheelAdjustment holds a wheel's sensitivity to the two commandable
// factors: how much of the mouse's largest-observed forward rate and
// largest-observed radial rate this wheel contributes when driven at
// its own max speed. If a wheel faces sideways, turning it doesn't
// help the mouse move forward, so its forward factor should be small;
// these factors capture exactly that heuristic. They are fixed at
// build time (§4.F): they depend only on the wheel's body-relative
// placement, not on the mouse's current heading.
type wheelAdjustment struct {
	forward float64
	turn    float64
}

// recomputeSynthesisFactors derives every wheel's adjustment factors
// and the curve-turn (A, B) pair, mirroring the reference's
// getWheelSpeedAdjustmentFactors and getCurveTurnFactors: each
// wheel's rate of change is evaluated at that wheel's own max linear
// velocity, then normalized by the single largest forward (resp.
// radial) magnitude observed across every wheel. This already
// generalizes to any number of wheels with no two-wheel assumption,
// so there is no least-squares solve involved.
func (m *Mouse) recomputeSynthesisFactors() {
	if len(m.wheelOrder) == 0 {
		return
	}

	forwardRates := make(map[string]units.LinearVelocity, len(m.wheelOrder))
	radialRates := make(map[string]units.AngularVelocity, len(m.wheelOrder))
	var maxForwardMagnitude, maxRadialMagnitude float64

	for _, name := range m.wheelOrder {
		w := m.wheels[name]
		maxLinear := w.MaxAngularVelocity().Abs().TimesRadius(w.Radius())
		forward, radial := kinematics.RatesOfChange(
			m.initialTranslation, m.initialRotation,
			w.InitialPosition(), w.InitialDirection(),
			maxLinear,
		)
		forwardRates[name] = forward
		radialRates[name] = radial
		if f := math.Abs(forward.MetersPerSecond()); f > maxForwardMagnitude {
			maxForwardMagnitude = f
		}
		if r := math.Abs(radial.RadiansPerSecond()); r > maxRadialMagnitude {
			maxRadialMagnitude = r
		}
	}

	for _, name := range m.wheelOrder {
		var a wheelAdjustment
		if maxForwardMagnitude > 0 {
			a.forward = forwardRates[name].MetersPerSecond() / maxForwardMagnitude
		}
		if maxRadialMagnitude > 0 {
			a.turn = radialRates[name].RadiansPerSecond() / maxRadialMagnitude
		}
		m.wheelAdjustmentFactors[name] = a
	}

	m.recomputeCurveTurnFactors()
}

// recomputeCurveTurnFactors solves the (A, B) pair such that driving
// every wheel with setWheelSpeedsForMovement(fraction, A, B) advances
// the mouse the length of a quarter-circle arc spanning one cell in
// the same time it takes to rotate 90 degrees (Mouse::getCurveTurnFactors).
// B is fixed at 1.0 and A is solved for from the ratio of total radial
// to total forward rate of change summed across every wheel's two
// adjustment-factor contributions, each evaluated at that wheel's own
// max linear velocity.
func (m *Mouse) recomputeCurveTurnFactors() {
	var totalForward units.LinearVelocity
	var totalRadial units.AngularVelocity

	for _, name := range m.wheelOrder {
		w := m.wheels[name]
		a := m.wheelAdjustmentFactors[name]
		maxLinear := w.MaxAngularVelocity().Abs().TimesRadius(w.Radius())
		for _, factor := range [2]float64{a.forward, a.turn} {
			forward, radial := kinematics.RatesOfChange(
				m.initialTranslation, m.initialRotation,
				w.InitialPosition(), w.InitialDirection(),
				units.LinearVelocity(maxLinear.MetersPerSecond()*factor),
			)
			totalForward += forward
			totalRadial += radial
		}
	}

	if totalForward.MetersPerSecond() == 0 {
		m.curveTurnA = 0
		m.curveTurnB = 0
		return
	}

	curveTurnArcLength := (m.cellSize / 2).Meters() * (math.Pi / 2)
	totalRotation := units.DegreesToAngle(90).Radians()

	m.curveTurnB = 1.0
	m.curveTurnA = (curveTurnArcLength / totalRotation) *
		(totalRadial.RadiansPerSecond() / totalForward.MetersPerSecond())
}

// SetWheelSpeedsForMovement is the continuous-interface's single
// entry point for driving the wheels (§4.F): forwardFactor and
// turnFactor describe a linear combination of "pure forward" (1, 0)
// and "pure turn" (0, 1), normalized so the sum of their magnitudes is
// in [0, 1], then scaled by fractionOfMaxSpeed and each wheel's own
// adjustment factors. It returns the first clamp encountered as a
// non-fatal *simerrors.OutOfRangeError; the command is still applied
// to every wheel.
func (m *Mouse) SetWheelSpeedsForMovement(fractionOfMaxSpeed, forwardFactor, turnFactor float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	factorMagnitude := math.Abs(forwardFactor) + math.Abs(turnFactor)
	var normalizedForward, normalizedTurn float64
	if factorMagnitude > 0 {
		normalizedForward = forwardFactor / factorMagnitude
		normalizedTurn = turnFactor / factorMagnitude
	}

	var firstClamp error
	for _, name := range m.wheelOrder {
		w := m.wheels[name]
		a := m.wheelAdjustmentFactors[name]
		wanted := w.MaxAngularVelocity().Abs() * units.AngularVelocity(fractionOfMaxSpeed*
			(normalizedForward*a.forward+normalizedTurn*a.turn))
		if clamped := w.SetAngularVelocity(wanted); clamped && firstClamp == nil {
			firstClamp = &simerrors.OutOfRangeError{Param: "wheel " + name + " angular velocity", Value: wanted.RadiansPerSecond()}
		}
	}
	return firstClamp
}

// MoveForward drives every wheel to move straight ahead at
// fractionOfMaxSpeed of the mouse's max speed.
func (m *Mouse) MoveForward(fractionOfMaxSpeed float64) error {
	return m.SetWheelSpeedsForMovement(fractionOfMaxSpeed, 1.0, 0.0)
}

// TurnLeftInPlace spins the mouse counter-clockwise at fractionOfMaxSpeed.
func (m *Mouse) TurnLeftInPlace(fractionOfMaxSpeed float64) error {
	return m.SetWheelSpeedsForMovement(fractionOfMaxSpeed, 0.0, 1.0)
}

// TurnRightInPlace spins the mouse clockwise at fractionOfMaxSpeed.
func (m *Mouse) TurnRightInPlace(fractionOfMaxSpeed float64) error {
	return m.SetWheelSpeedsForMovement(fractionOfMaxSpeed, 0.0, -1.0)
}

// CurveTurnLeft drives the build-time-solved quarter-circle arc
// counter-clockwise at fractionOfMaxSpeed.
func (m *Mouse) CurveTurnLeft(fractionOfMaxSpeed float64) error {
	return m.SetWheelSpeedsForMovement(fractionOfMaxSpeed, m.curveTurnA, m.curveTurnB)
}

// CurveTurnRight drives the build-time-solved quarter-circle arc
// clockwise at fractionOfMaxSpeed.
func (m *Mouse) CurveTurnRight(fractionOfMaxSpeed float64) error {
	return m.SetWheelSpeedsForMovement(fractionOfMaxSpeed, m.curveTurnA, -m.curveTurnB)
}

// Stop commands every wheel to zero velocity directly, bypassing the
// factor-normalization path (Mouse::stopAllWheels).
func (m *Mouse) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, name := range m.wheelOrder {
		m.wheels[name].SetAngularVelocity(0)
	}
}
