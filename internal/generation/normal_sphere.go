package generation

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// NormalSphereGenerator draws positions, velocities and masses from
// independent isotropic Gaussians. Mass is floored at zero via an
// absolute value rather than rejection, kept verbatim from the
// original model even though it biases the mass distribution slightly
// above a true half-normal.
type NormalSphereGenerator struct {
	settings NormalSphereSettings
	seed     uint32
}

func (g *NormalSphereGenerator) CreateSystem() (nbody.System, error) {
	n := g.settings.ParticleCount
	system := nbody.NewSystem(n)

	rng := rand.New(rand.NewPCG(uint64(g.seed), uint64(g.seed)))

	for i := 0; i < n; i++ {
		system.Positions[i] = vecmath.Vector3D{
			X: normal(rng, 0, g.settings.PositionStdDev),
			Y: normal(rng, 0, g.settings.PositionStdDev),
			Z: normal(rng, 0, g.settings.PositionStdDev),
		}
		system.Velocities[i] = vecmath.Vector3D{
			X: normal(rng, 0, g.settings.VelocityStdDev),
			Y: normal(rng, 0, g.settings.VelocityStdDev),
			Z: normal(rng, 0, g.settings.VelocityStdDev),
		}
		system.Masses[i] = math.Abs(normal(rng, g.settings.MassMean, g.settings.MassStdDev))
	}

	nbody.CenterSystem(system)
	return system, nil
}

// normal draws from N(mean, stddev) using math/rand/v2's standard
// normal generator.
func normal(rng *rand.Rand, mean, stddev float64) float64 {
	return mean + stddev*rng.NormFloat64()
}
