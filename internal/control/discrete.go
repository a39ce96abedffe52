package control

import (
	"github.com/mmsim/micromouse-core/internal/units"
)

// WallFront reports whether there is a wall immediately ahead of the
// mouse's current discretized tile and heading.
func (i *Interface) WallFront() (bool, error) {
	if err := i.ensureDiscrete("wallFront"); err != nil {
		return false, err
	}
	x, y := i.mouse.DiscretizedTile()
	return i.trueMaze.HasWall(x, y, i.mouse.DiscretizedDirection()), nil
}

// WallRight reports whether there is a wall to the mouse's right.
func (i *Interface) WallRight() (bool, error) {
	if err := i.ensureDiscrete("wallRight"); err != nil {
		return false, err
	}
	x, y := i.mouse.DiscretizedTile()
	return i.trueMaze.HasWall(x, y, i.mouse.DiscretizedDirection().RotatedClockwise()), nil
}

// WallLeft reports whether there is a wall to the mouse's left.
func (i *Interface) WallLeft() (bool, error) {
	if err := i.ensureDiscrete("wallLeft"); err != nil {
		return false, err
	}
	x, y := i.mouse.DiscretizedTile()
	return i.trueMaze.HasWall(x, y, i.mouse.DiscretizedDirection().RotatedCounterClockwise()), nil
}

// MoveForward advances the mouse count tiles (default 1) in its
// current discretized heading, blocking until the move completes or
// Quit is called. It drives at DiscreteForwardFraction of max speed
// and lets the physics loop's own ticks carry it into the next tile;
// it does not stop early for an undeclared wall, matching the
// reference's behavior of trusting the controller to have checked
// wallFront first.
func (i *Interface) MoveForward(count int) error {
	if err := i.ensureDiscrete("moveForward"); err != nil {
		return err
	}
	if count <= 0 {
		count = 1
	}
	dir := i.mouse.DiscretizedDirection()
	dx, dy := dir.Delta()
	startX, startY := i.mouse.DiscretizedTile()
	targetX, targetY := startX+dx*count, startY+dy*count

	if err := i.mouse.MoveForward(i.options.DiscreteForwardFraction); err != nil {
		i.logger.Warnf("moveForward: %v", err)
	}
	err := i.runtime.WaitUntil(func() bool {
		x, y := i.mouse.DiscretizedTile()
		return x == targetX && y == targetY
	})
	i.mouse.Stop()
	return err
}

func (i *Interface) turn(count int, degreesPerCount float64) error {
	if count <= 0 {
		count = 1
	}
	start := i.mouse.CurrentRotation()
	target := start + units.DegreesToAngle(degreesPerCount*float64(count))

	var err error
	if degreesPerCount < 0 {
		err = i.mouse.TurnRightInPlace(i.options.DiscreteTurnFraction)
	} else {
		err = i.mouse.TurnLeftInPlace(i.options.DiscreteTurnFraction)
	}
	if err != nil {
		i.logger.Warnf("turn: %v", err)
	}

	reached := func() bool {
		if degreesPerCount >= 0 {
			return i.mouse.CurrentRotation() >= target
		}
		return i.mouse.CurrentRotation() <= target
	}
	err = i.runtime.WaitUntil(reached)
	i.mouse.Stop()
	if err == nil {
		// Snap to the exact target heading; the last tick may have
		// overshot it by at most one physics step.
		i.mouse.Teleport(i.mouse.CurrentTranslation(), target)
	}
	return err
}

// TurnLeft rotates the mouse count*90 degrees counter-clockwise.
func (i *Interface) TurnLeft(count int) error {
	if err := i.ensureDiscrete("turnLeft"); err != nil {
		return err
	}
	return i.turn(count, 90)
}

// TurnRight rotates the mouse count*90 degrees clockwise.
func (i *Interface) TurnRight(count int) error {
	if err := i.ensureDiscrete("turnRight"); err != nil {
		return err
	}
	return i.turn(count, -90)
}

// TurnAround rotates the mouse count*180 degrees.
func (i *Interface) TurnAround(count int) error {
	if err := i.ensureDiscrete("turnAround"); err != nil {
		return err
	}
	return i.turn(count, 180)
}
