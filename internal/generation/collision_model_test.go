package generation

import (
	"math"
	"testing"
)

func TestCollisionModel_ParticleCountIsSumOfBothSpheres(t *testing.T) {
	settings := CollisionModelSettings{
		ParticleCount1: 40, Radius1: 2, TotalMass1: 10,
		ParticleCount2: 60, Radius2: 3, TotalMass2: 20,
		Separation: 10, RelativeVelocity: 1,
	}
	gen, err := NewGenerator(settings, 2)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	system, err := gen.CreateSystem()
	if err != nil {
		t.Fatalf("CreateSystem() error = %v", err)
	}

	if system.Count() != 100 {
		t.Errorf("Count() = %d, want 100", system.Count())
	}
	if got := system.TotalMass(); math.Abs(got-30) > 1e-6 {
		t.Errorf("TotalMass() = %v, want 30±1e-6", got)
	}
}

func TestCollisionModel_CenteredAfterGeneration(t *testing.T) {
	settings := CollisionModelSettings{
		ParticleCount1: 20, Radius1: 1, TotalMass1: 5,
		ParticleCount2: 20, Radius2: 1, TotalMass2: 5,
		Separation: 6, RelativeVelocity: 2,
	}
	gen, _ := NewGenerator(settings, 3)

	system, err := gen.CreateSystem()
	if err != nil {
		t.Fatalf("CreateSystem() error = %v", err)
	}

	var comX, comY, comZ float64
	total := system.TotalMass()
	for i, m := range system.Masses {
		p := system.Positions[i]
		comX += m * p.X
		comY += m * p.Y
		comZ += m * p.Z
	}
	comX /= total
	comY /= total
	comZ /= total

	const tol = 1e-9
	if math.Abs(comX) > tol || math.Abs(comY) > tol || math.Abs(comZ) > tol {
		t.Errorf("centre of mass = (%v, %v, %v), want near origin", comX, comY, comZ)
	}
}
