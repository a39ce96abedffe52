package control

import (
	"math"

	"github.com/mmsim/micromouse-core/internal/mouse"
	"github.com/mmsim/micromouse-core/internal/simerrors"
	"github.com/mmsim/micromouse-core/internal/units"
)

func (i *Interface) wheel(name string) (*mouse.Wheel, error) {
	w, ok := i.mouse.Wheel(name)
	if !ok {
		return nil, &simerrors.NoSuchPeripheralError{Kind: "wheel", Name: name}
	}
	return w, nil
}

// GetWheelMaxSpeed returns the magnitude of a wheel's max speed in rpm.
func (i *Interface) GetWheelMaxSpeed(name string) (float64, error) {
	if err := i.ensureContinuous("getWheelMaxSpeed"); err != nil {
		return 0, err
	}
	w, err := i.wheel(name)
	if err != nil {
		return 0, err
	}
	return w.MaxAngularVelocity().Abs().RPM(), nil
}

// SetWheelSpeed commands one wheel directly, in rpm, clamped to the
// wheel's max speed.
func (i *Interface) SetWheelSpeed(name string, rpm float64) error {
	if err := i.ensureContinuous("setWheelSpeed"); err != nil {
		return err
	}
	w, err := i.wheel(name)
	if err != nil {
		return err
	}
	i.mouse.Lock()
	defer i.mouse.Unlock()
	if clamped := w.SetAngularVelocity(units.RPMToAngularVelocity(rpm)); clamped {
		return &simerrors.OutOfRangeError{Param: "wheel " + name + " speed (rpm)", Value: rpm}
	}
	return nil
}

func (i *Interface) GetWheelEncoderTicksPerRevolution(name string) (float64, error) {
	if err := i.ensureContinuous("getWheelEncoderTicksPerRevolution"); err != nil {
		return 0, err
	}
	w, err := i.wheel(name)
	if err != nil {
		return 0, err
	}
	return w.EncoderTicksPerRevolution(), nil
}

func (i *Interface) ReadWheelEncoder(name string) (int, error) {
	if err := i.ensureContinuous("readWheelEncoder"); err != nil {
		return 0, err
	}
	w, err := i.wheel(name)
	if err != nil {
		return 0, err
	}
	i.mouse.Lock()
	defer i.mouse.Unlock()
	if w.EncoderType() == mouse.EncoderRelative {
		return w.ReadRelativeEncoder(), nil
	}
	return w.ReadAbsoluteEncoder(), nil
}

// ResetWheelEncoder zeroes a relative encoder; it is a no-op on an
// absolute encoder, matching the reference's "only if the encoder
// type is relative" comment.
func (i *Interface) ResetWheelEncoder(name string) error {
	if err := i.ensureContinuous("resetWheelEncoder"); err != nil {
		return err
	}
	w, err := i.wheel(name)
	if err != nil {
		return err
	}
	i.mouse.Lock()
	defer i.mouse.Unlock()
	if w.EncoderType() == mouse.EncoderRelative {
		w.ResetRelativeEncoder()
	}
	return nil
}

// ReadSensor returns a sensor's reading normalized to [0.0, 1.0],
// where 0.0 means "nothing within range" and 1.0 means an obstacle at
// zero range.
func (i *Interface) ReadSensor(name string) (float64, error) {
	if err := i.ensureContinuous("readSensor"); err != nil {
		return 0, err
	}
	s, ok := i.mouse.Sensor(name)
	if !ok {
		return 0, &simerrors.NoSuchPeripheralError{Kind: "sensor", Name: name}
	}
	maxRange := s.MaxRange()
	if maxRange <= 0 {
		return 0, nil
	}
	return 1 - float64(s.LastReading()/maxRange), nil
}

// ReadGyro returns the mouse's current rotation rate in degrees/second.
func (i *Interface) ReadGyro() (float64, error) {
	if err := i.ensureContinuous("readGyro"); err != nil {
		return 0, err
	}
	return i.mouse.CurrentGyro().RadiansPerSecond() * 180 / math.Pi, nil
}
