package simulation

import (
	"context"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// LeapfrogSettings configures the direct (non-Barnes-Hut) Leapfrog
// integrator.
type LeapfrogSettings struct {
	TimeStep  float64
	Softening float64
}

// Leapfrog is the symplectic kick-drift-kick integrator over direct
// O(N²) forces.
type Leapfrog struct {
	settings LeapfrogSettings
	system   nbody.System
	acc      []vecmath.Vector3D
	time     float64
}

func NewLeapfrog(settings LeapfrogSettings) *Leapfrog {
	return &Leapfrog{settings: settings}
}

func (l *Leapfrog) SetSystem(initial nbody.System) error {
	l.system = initial.Clone()
	if err := scaleInitialSystem(l.system, l.settings.Softening); err != nil {
		return err
	}
	l.acc = make([]vecmath.Vector3D, l.system.Count())
	l.time = 0
	return l.updateForces(context.Background())
}

func (l *Leapfrog) Step(ctx context.Context) error {
	dt := l.settings.TimeStep
	n := l.system.Count()
	halfDt := dt * 0.5

	for i := 0; i < n; i++ {
		l.system.Velocities[i] = l.system.Velocities[i].Add(l.acc[i].Scale(halfDt))
	}
	for i := 0; i < n; i++ {
		l.system.Positions[i] = l.system.Positions[i].Add(l.system.Velocities[i].Scale(dt))
	}

	if err := l.updateForces(ctx); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		l.system.Velocities[i] = l.system.Velocities[i].Add(l.acc[i].Scale(halfDt))
	}

	l.time += dt
	return nil
}

func (l *Leapfrog) SystemTime() float64  { return l.time }
func (l *Leapfrog) System() nbody.System { return l.system.Clone() }

func (l *Leapfrog) CopySystemInto(dst *nbody.System) { l.system.CopyInto(dst) }

func (l *Leapfrog) updateForces(ctx context.Context) error {
	n := l.system.Count()
	for i := range l.acc {
		l.acc[i] = vecmath.Vector3D{}
	}

	softeningSqr := l.settings.Softening * l.settings.Softening
	positions := l.system.Positions
	masses := l.system.Masses

	return parallelFor(ctx, n, func(start, end int) {
		for i := start; i < end; i++ {
			var acc vecmath.Vector3D
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				acc = acc.Add(pairwiseAcceleration(positions[i], positions[j], masses[j], softeningSqr))
			}
			l.acc[i] = acc
		}
	})
}
