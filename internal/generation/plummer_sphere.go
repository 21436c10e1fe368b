package generation

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// PlummerSphereGenerator builds a Plummer (1911) model star cluster
// following Aarseth's 1974/2003 cumulative-mass-inversion and
// rejection-sampled-speed recipe.
type PlummerSphereGenerator struct {
	settings PlummerSphereSettings
	seed     uint32
}

func (g *PlummerSphereGenerator) CreateSystem() (nbody.System, error) {
	n := g.settings.ParticleCount
	system := nbody.NewSystem(n)

	rng := rand.New(rand.NewPCG(uint64(g.seed), uint64(g.seed)))
	plummerRadius := g.settings.SphereRadius
	totalMass := g.settings.TotalMass
	particleMass := totalMass / float64(n)

	for i := 0; i < n; i++ {
		// Cumulative mass fraction mᵢ = (i+1)/(N+1) inverted against the
		// Plummer density profile gives the radius enclosing that mass;
		// mᵢ stays below 1, so every radius is finite.
		mi := float64(i+1) / float64(n+1)
		r := plummerRadius / math.Sqrt(math.Pow(mi, -2.0/3.0)-1.0)

		system.Positions[i] = vecmath.RandomOnSphere(rng, r)

		// Rejection sampling against g(q) = q²(1-q²)^3.5 with envelope 0.1.
		var q, gq float64
		for {
			q = rng.Float64()
			gq = rng.Float64() * 0.1
			if gq <= q*q*math.Pow(1.0-q*q, 3.5) {
				break
			}
		}

		escapeVelocity := math.Sqrt(2.0*nbody.GravitationalConstant*totalMass) *
			math.Pow(plummerRadius*plummerRadius+r*r, -0.25)
		speed := q * escapeVelocity

		system.Velocities[i] = vecmath.RandomOnSphere(rng, speed)
		system.Masses[i] = particleMass
	}

	nbody.CenterSystem(system)
	return system, nil
}
