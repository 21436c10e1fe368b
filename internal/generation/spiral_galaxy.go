package generation

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// SpiralGalaxyGenerator lays out N/arms particles per Archimedean-spiral
// arm with elliptical orbital speeds and a central massive black hole.
type SpiralGalaxyGenerator struct {
	settings SpiralGalaxySettings
	seed     uint32
}

func (g *SpiralGalaxyGenerator) CreateSystem() (nbody.System, error) {
	s := g.settings
	perArm := s.ParticleCount / s.Arms
	diskCount := perArm * s.Arms

	system := nbody.NewSystem(diskCount + 1)
	rng := rand.New(rand.NewPCG(uint64(g.seed), uint64(g.seed)))

	stellarMass := s.TotalMass / float64(s.ParticleCount)
	innerRadius := s.Radius / 40.0
	diskThicknessStdDev := s.Radius / 100.0

	idx := 0
	for k := 0; k < s.Arms; k++ {
		for i := 0; i < perArm; i++ {
			// radius*i/N (not /N_per_arm) is kept verbatim from the
			// model this galaxy generator is based on.
			distance := innerRadius + s.Radius*float64(i)/float64(s.ParticleCount)
			angle := s.Twist*math.Pi*float64(i)/float64(perArm) + 2*math.Pi*float64(k)/float64(s.Arms)

			pos := vecmath.Vector3D{X: math.Sin(angle), Y: math.Cos(angle), Z: 0}.SetNorm(distance)

			eccentricityMean := 0.4/(1+math.Exp((float64(s.ParticleCount)/50.0-float64(i))/4.0)) + 0.05
			var eccentricity float64
			for {
				eccentricity = normal(rng, eccentricityMean, 0.1)
				if eccentricity > 0.0 && eccentricity < 1.0 {
					break
				}
			}

			majorHalfAxis := distance / (1 + eccentricity)
			speed := math.Sqrt(nbody.GravitationalConstant * (s.BlackHoleMass + s.TotalMass) *
				(2.0/distance - 1.0/majorHalfAxis))

			vel := vecmath.Vector3D{X: pos.Y, Y: -pos.X, Z: 0}.SetNorm(speed).Scale(-1)

			pos.Z = normal(rng, 0, diskThicknessStdDev)

			system.Positions[idx] = pos
			system.Velocities[idx] = vel
			system.Masses[idx] = stellarMass
			idx++
		}
	}

	// Central black hole, at rest at the origin before centering.
	system.Masses[idx] = s.BlackHoleMass

	nbody.CenterSystem(system)
	return system, nil
}
