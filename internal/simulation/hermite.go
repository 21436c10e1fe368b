package simulation

import (
	"context"
	"math"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// HermiteSettings configures the global fourth-order Hermite
// predictor-corrector.
type HermiteSettings struct {
	TimeStep  float64
	Softening float64
}

// Hermite is a global fourth-order predictor-corrector carrying
// acceleration and its time derivative (jerk) for every particle. It
// follows the predict-evaluate-correct (PEC) scheme: the corrector uses
// the jerk evaluated at the predicted positions rather than
// re-evaluating forces a third time at the corrected positions, halving
// the per-step force-evaluation cost relative to a fully-iterated
// corrector.
type Hermite struct {
	settings HermiteSettings
	system   nbody.System
	acc      []vecmath.Vector3D
	jerk     []vecmath.Vector3D
	time     float64

	predPos []vecmath.Vector3D
	predVel []vecmath.Vector3D
}

func NewHermite(settings HermiteSettings) *Hermite {
	return &Hermite{settings: settings}
}

func (h *Hermite) SetSystem(initial nbody.System) error {
	h.system = initial.Clone()
	if err := scaleInitialSystem(h.system, h.settings.Softening); err != nil {
		return err
	}

	n := h.system.Count()
	h.acc = make([]vecmath.Vector3D, n)
	h.jerk = make([]vecmath.Vector3D, n)
	h.predPos = make([]vecmath.Vector3D, n)
	h.predVel = make([]vecmath.Vector3D, n)
	h.time = 0

	return h.computeAccJerk(context.Background(), h.system, h.acc, h.jerk)
}

func (h *Hermite) Step(ctx context.Context) error {
	dt := h.settings.TimeStep
	n := h.system.Count()
	dt2 := dt * dt

	for i := 0; i < n; i++ {
		h.predPos[i] = h.system.Positions[i].
			Add(h.system.Velocities[i].Scale(dt)).
			Add(h.acc[i].Scale(dt2 / 2)).
			Add(h.jerk[i].Scale(dt2 * dt / 6))
		h.predVel[i] = h.system.Velocities[i].
			Add(h.acc[i].Scale(dt)).
			Add(h.jerk[i].Scale(dt2 / 2))
	}

	predSystem := nbody.System{Positions: h.predPos, Velocities: h.predVel, Masses: h.system.Masses}

	predAcc := make([]vecmath.Vector3D, n)
	predJerk := make([]vecmath.Vector3D, n)
	if err := h.computeAccJerk(ctx, predSystem, predAcc, predJerk); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		velCorr := h.system.Velocities[i].
			Add(h.acc[i].Add(predAcc[i]).Scale(dt / 2)).
			Add(h.jerk[i].Sub(predJerk[i]).Scale(dt2 / 12))
		posCorr := h.system.Positions[i].
			Add(h.system.Velocities[i].Add(velCorr).Scale(dt / 2)).
			Add(h.acc[i].Sub(predAcc[i]).Scale(dt2 / 12))

		h.system.Positions[i] = posCorr
		h.system.Velocities[i] = velCorr
		h.acc[i] = predAcc[i]
		h.jerk[i] = predJerk[i]
	}

	h.time += dt
	return nil
}

func (h *Hermite) SystemTime() float64  { return h.time }
func (h *Hermite) System() nbody.System { return h.system.Clone() }

func (h *Hermite) CopySystemInto(dst *nbody.System) { h.system.CopyInto(dst) }

// computeAccJerk evaluates acceleration and jerk for every particle of
// s against every other particle, writing into the caller-provided
// acc/jerk slices.
func (h *Hermite) computeAccJerk(ctx context.Context, s nbody.System, acc, jerk []vecmath.Vector3D) error {
	n := s.Count()
	for i := range acc {
		acc[i] = vecmath.Vector3D{}
		jerk[i] = vecmath.Vector3D{}
	}

	softeningSqr := h.settings.Softening * h.settings.Softening
	positions := s.Positions
	velocities := s.Velocities
	masses := s.Masses

	return parallelFor(ctx, n, func(start, end int) {
		for i := start; i < end; i++ {
			var accI, jerkI vecmath.Vector3D
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				a, j2 := accJerkContribution(positions[i], velocities[i], positions[j], velocities[j], masses[j], softeningSqr)
				accI = accI.Add(a)
				jerkI = jerkI.Add(j2)
			}
			acc[i] = accI
			jerk[i] = jerkI
		}
	})
}

// accJerkContribution returns the acceleration and jerk a source
// particle j contributes to test particle i, following the standard
// Hermite pairwise formulas (Makino & Aarseth 1992):
// a = G·mⱼ·r/|r|³, jerk = G·mⱼ·(v/|r|³ − 3·(r·v/|r|²)·r/|r|³).
func accJerkContribution(posI, velI, posJ, velJ vecmath.Vector3D, massJ, softeningSqr float64) (vecmath.Vector3D, vecmath.Vector3D) {
	rij := posJ.Sub(posI)
	vij := velJ.Sub(velI)
	d2 := rij.Norm2() + softeningSqr
	if d2 == 0 {
		return vecmath.Vector3D{}, vecmath.Vector3D{}
	}

	dist := math.Sqrt(d2)
	invDist3 := 1.0 / (d2 * dist)
	alpha := rij.Dot(vij) / d2

	acc := rij.Scale(nbody.HenonGravitationalConstant * massJ * invDist3)
	jerk := vij.Sub(rij.Scale(3 * alpha)).Scale(nbody.HenonGravitationalConstant * massJ * invDist3)
	return acc, jerk
}
