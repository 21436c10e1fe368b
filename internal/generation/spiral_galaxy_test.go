package generation

import "testing"

func TestSpiralGalaxy_ParticleCountIsDiskPlusBlackHole(t *testing.T) {
	settings := SpiralGalaxySettings{ParticleCount: 100, Arms: 3, Radius: 20, TotalMass: 50, Twist: 2, BlackHoleMass: 1000}
	gen, err := NewGenerator(settings, 5)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	system, err := gen.CreateSystem()
	if err != nil {
		t.Fatalf("CreateSystem() error = %v", err)
	}

	// 100/3 = 33 per arm, so the disk holds 99 particles plus the hole.
	const wantDisk = 99
	if system.Count() != wantDisk+1 {
		t.Errorf("Count() = %d, want %d", system.Count(), wantDisk+1)
	}
}

func TestSpiralGalaxy_BlackHoleIsMostMassiveParticle(t *testing.T) {
	settings := SpiralGalaxySettings{ParticleCount: 60, Arms: 2, Radius: 10, TotalMass: 30, Twist: 1.5, BlackHoleMass: 5000}
	gen, _ := NewGenerator(settings, 9)

	system, err := gen.CreateSystem()
	if err != nil {
		t.Fatalf("CreateSystem() error = %v", err)
	}

	maxMass := 0.0
	for _, m := range system.Masses {
		if m > maxMass {
			maxMass = m
		}
	}
	if maxMass != 5000 {
		t.Errorf("max mass = %v, want black hole mass 5000", maxMass)
	}
}
