package generation

import (
	"math/rand/v2"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// UniformSphereGenerator carves a homogeneous sphere out of a
// homogeneous cube by rejection sampling.
type UniformSphereGenerator struct {
	settings UniformSphereSettings
	seed     uint32
}

func (g *UniformSphereGenerator) CreateSystem() (nbody.System, error) {
	n := g.settings.ParticleCount
	system := nbody.NewSystem(n)

	rng := rand.New(rand.NewPCG(uint64(g.seed), uint64(g.seed)))
	radius := g.settings.SphereRadius
	particleMass := g.settings.TotalMass / float64(n)

	for i := 0; i < n; i++ {
		var position vecmath.Vector3D
		for {
			position = vecmath.Vector3D{
				X: uniformIn(rng, -radius, radius),
				Y: uniformIn(rng, -radius, radius),
				Z: uniformIn(rng, -radius, radius),
			}
			if position.Norm() <= radius {
				break
			}
		}
		system.Positions[i] = position

		velocity := vecmath.Vector3D{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
		system.Velocities[i] = velocity.SetNorm(g.settings.InitialVelocity)

		system.Masses[i] = particleMass
	}

	nbody.CenterSystem(system)
	return system, nil
}
