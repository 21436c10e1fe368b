package generation

import (
	"math"
	"testing"
)

// Property 3 from the spec: Plummer mass conservation, |sum(m) - M| < 1e-6.
// Plummer particle mass is deterministic (M/N), so this holds exactly
// up to floating-point summation error.
func TestPlummerSphere_MassConservation(t *testing.T) {
	settings := PlummerSphereSettings{ParticleCount: 200, SphereRadius: 3, TotalMass: 50}
	gen, err := NewGenerator(settings, 11)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	system, err := gen.CreateSystem()
	if err != nil {
		t.Fatalf("CreateSystem() error = %v", err)
	}

	if got := system.TotalMass(); math.Abs(got-50) > 1e-6 {
		t.Errorf("TotalMass() = %v, want 50±1e-6", got)
	}
}

func TestPlummerSphere_ParticleCount(t *testing.T) {
	settings := PlummerSphereSettings{ParticleCount: 37, SphereRadius: 1, TotalMass: 1}
	gen, _ := NewGenerator(settings, 1)

	system, err := gen.CreateSystem()
	if err != nil {
		t.Fatalf("CreateSystem() error = %v", err)
	}
	if system.Count() != 37 {
		t.Errorf("Count() = %d, want 37", system.Count())
	}
}
