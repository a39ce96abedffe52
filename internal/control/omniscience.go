package control

import "github.com/mmsim/micromouse-core/internal/maze"

// CurrentXTile returns the mouse's true current tile column.
func (i *Interface) CurrentXTile() (int, error) {
	if err := i.ensureOmniscience("currentXTile"); err != nil {
		return 0, err
	}
	x, _ := i.mouse.DiscretizedTile()
	return x, nil
}

// CurrentYTile returns the mouse's true current tile row.
func (i *Interface) CurrentYTile() (int, error) {
	if err := i.ensureOmniscience("currentYTile"); err != nil {
		return 0, err
	}
	_, y := i.mouse.DiscretizedTile()
	return y, nil
}

// CurrentDirection returns the mouse's true current discretized heading.
func (i *Interface) CurrentDirection() (maze.Direction, error) {
	if err := i.ensureOmniscience("currentDirection"); err != nil {
		return 0, err
	}
	return i.mouse.DiscretizedDirection(), nil
}

// CurrentXPosMeters returns the mouse's true continuous X position.
func (i *Interface) CurrentXPosMeters() (float64, error) {
	if err := i.ensureOmniscience("currentXPosMeters"); err != nil {
		return 0, err
	}
	return float64(i.mouse.CurrentTranslation().X), nil
}

// CurrentYPosMeters returns the mouse's true continuous Y position.
func (i *Interface) CurrentYPosMeters() (float64, error) {
	if err := i.ensureOmniscience("currentYPosMeters"); err != nil {
		return 0, err
	}
	return float64(i.mouse.CurrentTranslation().Y), nil
}

// CurrentRotationDegrees returns the mouse's true continuous heading in degrees.
func (i *Interface) CurrentRotationDegrees() (float64, error) {
	if err := i.ensureOmniscience("currentRotationDegrees"); err != nil {
		return 0, err
	}
	return i.mouse.CurrentRotation().Degrees(), nil
}
