package generation

import (
	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// CollisionModelGenerator builds two Plummer spheres on a collision
// course: seeded with seed and seed+1, offset ±separation/2 along X,
// given opposing relative velocity along X, then concatenated and
// re-centred.
type CollisionModelGenerator struct {
	settings CollisionModelSettings
	seed     uint32
}

func (g *CollisionModelGenerator) CreateSystem() (nbody.System, error) {
	s := g.settings

	sphere1Gen := &PlummerSphereGenerator{
		settings: PlummerSphereSettings{ParticleCount: s.ParticleCount1, SphereRadius: s.Radius1, TotalMass: s.TotalMass1},
		seed:     g.seed,
	}
	sphere1, err := sphere1Gen.CreateSystem()
	if err != nil {
		return nbody.System{}, err
	}

	sphere2Gen := &PlummerSphereGenerator{
		settings: PlummerSphereSettings{ParticleCount: s.ParticleCount2, SphereRadius: s.Radius2, TotalMass: s.TotalMass2},
		seed:     g.seed + 1,
	}
	sphere2, err := sphere2Gen.CreateSystem()
	if err != nil {
		return nbody.System{}, err
	}

	offset := vecmath.Vector3D{X: s.Separation / 2.0}
	approach := vecmath.Vector3D{X: s.RelativeVelocity / 2.0}

	for i := range sphere1.Positions {
		sphere1.Positions[i] = sphere1.Positions[i].Add(offset)
		sphere1.Velocities[i] = sphere1.Velocities[i].Add(approach)
	}
	for i := range sphere2.Positions {
		sphere2.Positions[i] = sphere2.Positions[i].Sub(offset)
		sphere2.Velocities[i] = sphere2.Velocities[i].Sub(approach)
	}

	system := nbody.NewSystem(sphere1.Count() + sphere2.Count())
	n1 := sphere1.Count()
	copy(system.Positions[:n1], sphere1.Positions)
	copy(system.Velocities[:n1], sphere1.Velocities)
	copy(system.Masses[:n1], sphere1.Masses)
	copy(system.Positions[n1:], sphere2.Positions)
	copy(system.Velocities[n1:], sphere2.Velocities)
	copy(system.Masses[n1:], sphere2.Masses)

	nbody.CenterSystem(system)
	return system, nil
}
