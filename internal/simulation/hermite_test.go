package simulation

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/dynsim/internal/vecmath"
)

// Hermite is a 4th-order method, so dividing dt by ten brings the final
// state closer to a reference run at a much smaller step: on a bound
// two-body orbit, the dt=0.002 run's final-position error against the
// dt=0.0002 reference is below the dt=0.02 run's error.
func TestHermite_SmallerTimeStepImprovesAccuracy(t *testing.T) {
	const duration = 1.0

	runTo := func(dt float64) (float64, float64) {
		h := NewHermite(HermiteSettings{TimeStep: dt, Softening: 0.05})
		// twoBodySystem's speed of 0.3 is far above escape speed in
		// physical G; 0.03 gives a bound pair whose orbit visibly curves
		// within the run, so truncation error dominates round-off.
		system := twoBodySystem()
		system.Velocities[0] = vecmath.Vector3D{Y: -0.03}
		system.Velocities[1] = vecmath.Vector3D{Y: 0.03}
		if err := h.SetSystem(system); err != nil {
			t.Fatalf("SetSystem() error = %v", err)
		}
		steps := int(duration/dt + 0.5)
		for i := 0; i < steps; i++ {
			if err := h.Step(context.Background()); err != nil {
				t.Fatalf("Step() error = %v", err)
			}
		}
		final := h.System()
		return final.Positions[0].X, final.Positions[0].Y
	}

	xCoarse, yCoarse := runTo(0.02)
	xFine, yFine := runTo(0.002)
	xFiner, yFiner := runTo(0.0002)

	errCoarse := math.Hypot(xCoarse-xFiner, yCoarse-yFiner)
	errFine := math.Hypot(xFine-xFiner, yFine-yFiner)

	if errFine >= errCoarse {
		t.Errorf("error did not shrink when dividing the step by ten: coarse=%v fine=%v", errCoarse, errFine)
	}
}

func TestHermite_SystemTimeTracksSteps(t *testing.T) {
	h := NewHermite(HermiteSettings{TimeStep: 0.1, Softening: 0.05})
	if err := h.SetSystem(twoBodySystem()); err != nil {
		t.Fatalf("SetSystem() error = %v", err)
	}

	for i := 0; i < 15; i++ {
		if err := h.Step(context.Background()); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}

	if got := h.SystemTime(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("SystemTime() = %v, want 1.5", got)
	}
}
