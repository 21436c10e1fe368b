package simulation

import (
	"context"
	"math"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// EulerSettings configures the Euler integrator.
type EulerSettings struct {
	TimeStep  float64
	Softening float64
}

// Euler is the first-order, direct O(N²) integrator: accelerations
// computed once per step from the current positions, positions and
// velocities both advanced by a single forward Euler update.
type Euler struct {
	settings EulerSettings
	system   nbody.System
	acc      []vecmath.Vector3D
	time     float64
}

func NewEuler(settings EulerSettings) *Euler {
	return &Euler{settings: settings}
}

func (e *Euler) SetSystem(initial nbody.System) error {
	e.system = initial.Clone()
	if err := scaleInitialSystem(e.system, e.settings.Softening); err != nil {
		return err
	}
	e.acc = make([]vecmath.Vector3D, e.system.Count())
	e.time = 0
	return e.updateForces(context.Background())
}

func (e *Euler) Step(ctx context.Context) error {
	if err := e.updateForces(ctx); err != nil {
		return err
	}

	dt := e.settings.TimeStep
	n := e.system.Count()
	for i := 0; i < n; i++ {
		e.system.Positions[i] = e.system.Positions[i].Add(e.system.Velocities[i].Scale(dt))
		e.system.Velocities[i] = e.system.Velocities[i].Add(e.acc[i].Scale(dt))
	}

	e.time += dt
	return nil
}

func (e *Euler) SystemTime() float64  { return e.time }
func (e *Euler) System() nbody.System { return e.system.Clone() }

func (e *Euler) CopySystemInto(dst *nbody.System) { e.system.CopyInto(dst) }

func (e *Euler) updateForces(ctx context.Context) error {
	n := e.system.Count()
	for i := range e.acc {
		e.acc[i] = vecmath.Vector3D{}
	}

	softeningSqr := e.settings.Softening * e.settings.Softening
	positions := e.system.Positions
	masses := e.system.Masses

	return parallelFor(ctx, n, func(start, end int) {
		for i := start; i < end; i++ {
			var acc vecmath.Vector3D
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				acc = acc.Add(pairwiseAcceleration(positions[i], positions[j], masses[j], softeningSqr))
			}
			e.acc[i] = acc
		}
	})
}

// pairwiseAcceleration is the softened Newtonian acceleration a source
// mass at posJ, mass massJ, contributes to a test point at posI.
func pairwiseAcceleration(posI, posJ vecmath.Vector3D, massJ, softeningSqr float64) vecmath.Vector3D {
	rij := posJ.Sub(posI)
	d2 := rij.Norm2() + softeningSqr
	if d2 == 0 {
		return vecmath.Vector3D{}
	}
	invDist3 := 1.0 / (d2 * math.Sqrt(d2))
	return rij.Scale(nbody.HenonGravitationalConstant * massJ * invDist3)
}
