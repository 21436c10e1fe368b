package generation

import (
	"math/rand/v2"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// UniformCubeGenerator draws positions uniformly inside an axis-aligned
// cube and each velocity uniformly from the unit cube [0,1)³, rescaled
// to the configured speed, so velocity directions before centring all
// lie in the positive octant.
type UniformCubeGenerator struct {
	settings UniformCubeSettings
	seed     uint32
}

func (g *UniformCubeGenerator) CreateSystem() (nbody.System, error) {
	n := g.settings.ParticleCount
	system := nbody.NewSystem(n)

	rng := rand.New(rand.NewPCG(uint64(g.seed), uint64(g.seed)))
	halfSide := g.settings.SideLength / 2.0
	particleMass := g.settings.TotalMass / float64(n)

	for i := 0; i < n; i++ {
		system.Positions[i] = vecmath.Vector3D{
			X: uniformIn(rng, -halfSide, halfSide),
			Y: uniformIn(rng, -halfSide, halfSide),
			Z: uniformIn(rng, -halfSide, halfSide),
		}

		velocity := vecmath.Vector3D{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
		system.Velocities[i] = velocity.SetNorm(g.settings.InitialVelocity)

		system.Masses[i] = particleMass
	}

	nbody.CenterSystem(system)
	return system, nil
}

func uniformIn(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
