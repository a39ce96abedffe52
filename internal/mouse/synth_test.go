package mouse

import (
	"math"
	"testing"

	"github.com/mmsim/micromouse-core/internal/kinematics"
	"github.com/mmsim/micromouse-core/internal/units"
)

// wheelAvgRadial independently recomputes the mouse's currently
// commanded, §4.E-averaged radial rate straight from each wheel's
// angular velocity, the same equation Update uses, so a test can
// assert against it without depending on Update having already run.
func wheelAvgRadial(m *Mouse) units.AngularVelocity {
	var sum units.AngularVelocity
	n := 0
	for _, name := range m.WheelNames() {
		w, _ := m.Wheel(name)
		linear := w.AngularVelocity().TimesRadius(w.Radius())
		_, radial := kinematics.RatesOfChange(
			m.initialTranslation, m.initialRotation,
			w.InitialPosition(), w.InitialDirection(),
			linear,
		)
		sum += radial
		n += 1
	}
	if n == 0 {
		return 0
	}
	return units.AngularVelocity(float64(sum) / float64(n))
}

// TestCurveTurnLeftTracesQuarterArc is the S5 scenario (spec.md §8):
// for a symmetric two-wheel mouse, the build-time-solved curve-turn
// (A, B) factors must make setWheelSpeedsForCurveTurnLeft(1.0), driven
// for the duration a 90 degree turn takes at the resulting radial
// rate, land within 1e-3 rad of +pi/2 rotation and within 1e-3 m of
// the quarter-circle arc's endpoint: R forward and R to the left of
// the start, where R is half the maze's cell size.
func TestCurveTurnLeftTracesQuarterArc(t *testing.T) {
	m := buildTestMouse(t)
	if err := m.CurveTurnLeft(1.0); err != nil {
		t.Fatalf("CurveTurnLeft: %v", err)
	}

	avgRadial := wheelAvgRadial(m)
	if avgRadial == 0 {
		t.Fatal("curve turn produced zero radial rate")
	}
	duration := (math.Pi / 2) / avgRadial.RadiansPerSecond()
	if duration < 0 {
		duration = -duration
	}

	const steps = 5000
	dt := units.Duration(duration / steps)
	start := m.CurrentTranslation()
	startRotation := m.CurrentRotation()
	for i := 0; i < steps; i += 1 {
		m.Update(dt)
	}

	gotRotation := (m.CurrentRotation() - startRotation).Radians()
	if math.Abs(math.Abs(gotRotation)-math.Pi/2) > 1e-3 {
		t.Errorf("rotation after curve turn = %v rad, want +/- pi/2 within 1e-3", gotRotation)
	}

	radius := (m.cellSize / 2).Meters()
	wantX := radius*startRotation.Cos() - radius*startRotation.Sin()
	wantY := radius*startRotation.Sin() + radius*startRotation.Cos()

	end := m.CurrentTranslation()
	gotX := end.X.Meters() - start.X.Meters()
	gotY := end.Y.Meters() - start.Y.Meters()
	if math.Abs(gotX-wantX) > 1e-3 || math.Abs(gotY-wantY) > 1e-3 {
		t.Errorf("translation delta = (%v, %v), want (%v, %v) within 1e-3m", gotX, gotY, wantX, wantY)
	}
}

// TestCurveTurnRightMirrorsLeft checks that curving right sweeps the
// same 90 degrees with the opposite sign of rotation as curving left,
// matching how setWheelSpeedsForCurveTurnRight negates only the B
// (turn) factor.
func TestCurveTurnRightMirrorsLeft(t *testing.T) {
	left := buildTestMouse(t)
	right := buildTestMouse(t)
	if err := left.CurveTurnLeft(1.0); err != nil {
		t.Fatalf("CurveTurnLeft: %v", err)
	}
	if err := right.CurveTurnRight(1.0); err != nil {
		t.Fatalf("CurveTurnRight: %v", err)
	}

	leftRadial := wheelAvgRadial(left).RadiansPerSecond()
	rightRadial := wheelAvgRadial(right).RadiansPerSecond()
	if math.Abs(leftRadial+rightRadial) > 1e-9 {
		t.Errorf("left radial rate %v and right radial rate %v are not opposite", leftRadial, rightRadial)
	}
}
