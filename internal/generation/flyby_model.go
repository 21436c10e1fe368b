package generation

import (
	"math"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// FlybyModelGenerator builds a Plummer sphere plus one massive particle
// drifting in from outside the cluster on a hyperbolic trajectory.
type FlybyModelGenerator struct {
	settings FlybyModelSettings
	seed     uint32
}

func (g *FlybyModelGenerator) CreateSystem() (nbody.System, error) {
	s := g.settings

	plummerGen := &PlummerSphereGenerator{
		settings: PlummerSphereSettings{ParticleCount: s.ParticleCount, SphereRadius: s.Radius, TotalMass: s.TotalMass},
		seed:     g.seed,
	}
	cluster, err := plummerGen.CreateSystem()
	if err != nil {
		return nbody.System{}, err
	}

	distance := 6 * math.Cbrt(s.Radius)

	system := nbody.NewSystem(cluster.Count() + 1)
	copy(system.Positions[:cluster.Count()], cluster.Positions)
	copy(system.Velocities[:cluster.Count()], cluster.Velocities)
	copy(system.Masses[:cluster.Count()], cluster.Masses)

	last := cluster.Count()
	system.Positions[last] = vecmath.Vector3D{X: distance, Y: 3 * s.Radius, Z: 0}
	system.Velocities[last] = vecmath.Vector3D{X: -4, Y: 0, Z: 0}
	system.Masses[last] = s.BodyMass

	nbody.CenterSystem(system)
	return system, nil
}
