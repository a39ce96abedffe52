// Package kinematics implements the forward-kinematics equation that
// turns a single wheel's linear velocity into its contribution to the
// mouse's forward and rotational rate of change. This is the core
// kinematic equation of the simulator (§4.E) and is deliberately kept
// free of any dependency on the mouse or maze packages: both the
// per-tick integrator (mouse.Mouse.Update) and the wheel-speed
// synthesizer (mouse package, §4.F) call into it, exactly as the
// reference implementation shares a single getRatesOfChange between
// Mouse::update and Mouse::getWheelSpeedAdjustmentFactors /
// Mouse::getCurveTurnFactors.
package kinematics

import "github.com/mmsim/micromouse-core/internal/units"

// RatesOfChange computes a single wheel's contribution to the mouse's
// forward translation rate and rotational rate, given the mouse's
// initial center/heading, the wheel's initial position/direction, and
// the wheel's current linear velocity (angular velocity times radius).
//
// forward = wheelLinearVelocity * cos(initialRotation - wheelInitialDirection)
// radial  = wheelLinearVelocity * sin(theta(center-wheel) - wheelInitialDirection) / |center-wheel|
//
// This must be reproduced exactly — it is the one equation every
// implementer of this simulator is required to match bit-for-bit in
// its algebraic form (spec.md §4.E).
func RatesOfChange(
	initialTranslation units.Cartesian,
	initialRotation units.Angle,
	wheelInitialPosition units.Cartesian,
	wheelInitialDirection units.Angle,
	wheelLinearVelocity units.LinearVelocity,
) (forward units.LinearVelocity, radial units.AngularVelocity) {

	forward = units.LinearVelocity(
		wheelLinearVelocity.MetersPerSecond() * initialRotation.Sub(wheelInitialDirection).Cos(),
	)

	wheelToCenter := initialTranslation.Sub(wheelInitialPosition)
	radial = units.AngularVelocity(
		wheelLinearVelocity.MetersPerSecond() *
			wheelToCenter.Theta().Sub(wheelInitialDirection).Sin() /
			wheelToCenter.Rho().Meters(),
	)

	return forward, radial
}
