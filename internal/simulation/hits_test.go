package simulation

import (
	"context"
	"testing"

	"github.com/san-kum/dynsim/internal/nbody"
)

// A Step call advances exactly one particle; this exercises the
// schedule invariant from internal/nbody/invariants_suite_test.go end
// to end through the integrator rather than the bare schedule type.
func TestHITS_StepAdvancesSystemTimeMonotonically(t *testing.T) {
	h := NewHITS(HITSSettings{TimeStepParameter: 0.01, Softening: 0.05})
	if err := h.SetSystem(twoBodySystem()); err != nil {
		t.Fatalf("SetSystem() error = %v", err)
	}

	last := h.SystemTime()
	for i := 0; i < 200; i++ {
		if err := h.Step(context.Background()); err != nil {
			t.Fatalf("Step() error at iteration %d: %v", i, err)
		}
		got := h.SystemTime()
		if got < last {
			t.Fatalf("SystemTime() went backward: %v -> %v at iteration %d", last, got, i)
		}
		last = got
	}
}

func TestHITS_ConservesMassAndParticleCount(t *testing.T) {
	h := NewHITS(HITSSettings{TimeStepParameter: 0.01, Softening: 0.05})
	system := twoBodySystem()
	if err := h.SetSystem(system); err != nil {
		t.Fatalf("SetSystem() error = %v", err)
	}

	for i := 0; i < 50; i++ {
		if err := h.Step(context.Background()); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}

	got := h.System()
	if got.Count() != system.Count() {
		t.Errorf("Count() = %d, want %d", got.Count(), system.Count())
	}
	if diff := got.TotalMass() - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("TotalMass() = %v, want 1 (Hénon units)", got.TotalMass())
	}
}

func TestHITS_EmptySystemRejected(t *testing.T) {
	h := NewHITS(HITSSettings{TimeStepParameter: 0.01, Softening: 0.05})
	if err := h.SetSystem(nbody.NewSystem(0)); err == nil {
		t.Error("SetSystem() on an empty system returned a nil error")
	}
}
