package simulation

import (
	"context"

	"github.com/san-kum/dynsim/internal/barneshut"
	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// BarnesHutLeapfrogSettings configures the tree-accelerated Leapfrog
// integrator.
type BarnesHutLeapfrogSettings struct {
	TimeStep  float64
	ThetaMAC  float64
	Softening float64
}

// BarnesHutLeapfrog is the same kick-drift-kick shell as Leapfrog, but
// force evaluation walks a barneshut.Tree (rebuilt every step) instead
// of summing every pair directly, trading O(N²) force evaluation for
// O(N log N).
type BarnesHutLeapfrog struct {
	settings BarnesHutLeapfrogSettings
	system   nbody.System
	tree     *barneshut.Tree
	acc      []vecmath.Vector3D
	time     float64
}

func NewBarnesHutLeapfrog(settings BarnesHutLeapfrogSettings) *BarnesHutLeapfrog {
	return &BarnesHutLeapfrog{settings: settings, tree: barneshut.NewTree()}
}

func (b *BarnesHutLeapfrog) SetSystem(initial nbody.System) error {
	b.system = initial.Clone()
	if err := scaleInitialSystem(b.system, b.settings.Softening); err != nil {
		return err
	}
	b.acc = make([]vecmath.Vector3D, b.system.Count())
	b.time = 0
	b.updateForces()
	return nil
}

func (b *BarnesHutLeapfrog) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dt := b.settings.TimeStep
	n := b.system.Count()
	halfDt := dt * 0.5

	for i := 0; i < n; i++ {
		b.system.Velocities[i] = b.system.Velocities[i].Add(b.acc[i].Scale(halfDt))
	}
	for i := 0; i < n; i++ {
		b.system.Positions[i] = b.system.Positions[i].Add(b.system.Velocities[i].Scale(dt))
	}

	b.updateForces()

	for i := 0; i < n; i++ {
		b.system.Velocities[i] = b.system.Velocities[i].Add(b.acc[i].Scale(halfDt))
	}

	b.time += dt
	return nil
}

func (b *BarnesHutLeapfrog) SystemTime() float64  { return b.time }
func (b *BarnesHutLeapfrog) System() nbody.System { return b.system.Clone() }

func (b *BarnesHutLeapfrog) CopySystemInto(dst *nbody.System) { b.system.CopyInto(dst) }

func (b *BarnesHutLeapfrog) updateForces() {
	bounds := boundingCube(b.system)
	b.tree.Build(b.system, bounds)

	thetaSqr := b.settings.ThetaMAC * b.settings.ThetaMAC
	softeningSqr := b.settings.Softening * b.settings.Softening

	for i := 0; i < b.system.Count(); i++ {
		b.acc[i] = b.tree.AccelerationAt(i, thetaSqr, softeningSqr)
	}
}

// boundingCube returns the smallest power-of-two-free cube centred on
// the origin that contains every particle, with headroom so particles
// drifting outward between rebuilds don't immediately fall outside it.
func boundingCube(s nbody.System) barneshut.Cube {
	maxExtent := 0.0
	for _, p := range s.Positions {
		for _, c := range [3]float64{absf(p.X), absf(p.Y), absf(p.Z)} {
			if c > maxExtent {
				maxExtent = c
			}
		}
	}
	if maxExtent == 0 {
		maxExtent = 1
	}
	return barneshut.Cube{HalfSize: maxExtent * 2}
}
