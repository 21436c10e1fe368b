package simulation

import (
	"context"
	"math"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// HITSSettings configures Hermite Individual Time Steps: each particle
// keeps its own clock and timestep instead of the whole system
// advancing in lockstep.
type HITSSettings struct {
	// TimeStepParameter (η in the Aarseth criterion) scales every
	// particle's adaptive timestep; smaller values mean finer steps.
	TimeStepParameter float64
	Softening         float64
}

// HITS implements Hermite integration with individual particle time
// steps (Makino 1991): particles are kept in a min-heap schedule keyed
// by their next update time, and each Step call advances exactly one
// particle — the one due soonest — rather than the whole system.
//
// Every other particle is predicted to the advancing particle's update
// time before the force evaluation, since they are each sitting at
// their own, generally earlier, clock reading.
type HITS struct {
	settings HITSSettings
	system   nbody.System
	schedule *nbody.ParticleSchedule

	times     []float64
	timeSteps []float64
	acc       []vecmath.Vector3D
	jerk      []vecmath.Vector3D
	snap      []vecmath.Vector3D
	crackle   []vecmath.Vector3D

	predPos []vecmath.Vector3D
	predVel []vecmath.Vector3D

	time float64
}

func NewHITS(settings HITSSettings) *HITS {
	return &HITS{settings: settings}
}

func (h *HITS) SetSystem(initial nbody.System) error {
	h.system = initial.Clone()
	if err := scaleInitialSystem(h.system, h.settings.Softening); err != nil {
		return err
	}

	n := h.system.Count()
	h.times = make([]float64, n)
	h.timeSteps = make([]float64, n)
	h.acc = make([]vecmath.Vector3D, n)
	h.jerk = make([]vecmath.Vector3D, n)
	h.snap = make([]vecmath.Vector3D, n)
	h.crackle = make([]vecmath.Vector3D, n)
	h.predPos = make([]vecmath.Vector3D, n)
	h.predVel = make([]vecmath.Vector3D, n)
	h.time = 0

	accAll, jerkAll, err := h.computeAllAccJerk(context.Background(), h.system)
	if err != nil {
		return err
	}
	copy(h.acc, accAll)
	copy(h.jerk, jerkAll)

	h.schedule = nbody.NewParticleSchedule(n)
	for i := 0; i < n; i++ {
		dt := h.initialTimeStep(h.acc[i], h.jerk[i])
		h.timeSteps[i] = dt
		h.schedule.Push(i, dt)
	}
	return nil
}

func (h *HITS) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	particle, nextTime, ok := h.schedule.Pop()
	if !ok {
		return nil
	}

	n := h.system.Count()
	for j := 0; j < n; j++ {
		dtj := nextTime - h.times[j]
		h.predPos[j] = h.system.Positions[j].
			Add(h.system.Velocities[j].Scale(dtj)).
			Add(h.acc[j].Scale(dtj * dtj / 2)).
			Add(h.jerk[j].Scale(dtj * dtj * dtj / 6))
		h.predVel[j] = h.system.Velocities[j].
			Add(h.acc[j].Scale(dtj)).
			Add(h.jerk[j].Scale(dtj * dtj / 2))
	}
	predSystem := nbody.System{Positions: h.predPos, Velocities: h.predVel, Masses: h.system.Masses}

	softeningSqr := h.settings.Softening * h.settings.Softening
	var newAcc, newJerk vecmath.Vector3D
	for j := 0; j < n; j++ {
		if j == particle {
			continue
		}
		a, jk := accJerkContribution(predSystem.Positions[particle], predSystem.Velocities[particle],
			predSystem.Positions[j], predSystem.Velocities[j], predSystem.Masses[j], softeningSqr)
		newAcc = newAcc.Add(a)
		newJerk = newJerk.Add(jk)
	}

	dt := nextTime - h.times[particle]
	oldAcc, oldJerk := h.acc[particle], h.jerk[particle]

	velCorr := h.system.Velocities[particle].
		Add(oldAcc.Add(newAcc).Scale(dt / 2)).
		Add(oldJerk.Sub(newJerk).Scale(dt * dt / 12))
	posCorr := h.system.Positions[particle].
		Add(h.system.Velocities[particle].Add(velCorr).Scale(dt / 2)).
		Add(oldAcc.Sub(newAcc).Scale(dt * dt / 12))

	newSnap, newCrackle := deriveSnapCrackle(oldAcc, oldJerk, newAcc, newJerk, dt)

	h.system.Positions[particle] = posCorr
	h.system.Velocities[particle] = velCorr
	h.acc[particle] = newAcc
	h.jerk[particle] = newJerk
	h.snap[particle] = newSnap
	h.crackle[particle] = newCrackle
	h.times[particle] = nextTime

	newDt := h.adaptiveTimeStep(newAcc, newJerk, newSnap, newCrackle)
	h.timeSteps[particle] = newDt
	h.schedule.Reschedule(particle, nextTime+newDt)

	h.time = nextTime
	return nil
}

// deriveSnapCrackle recovers the second and third time derivatives of
// acceleration from the old and new (acc, jerk) pair bracketing a step
// of width dt, via the standard Hermite finite-difference formulas
// (Makino & Aarseth 1992): fitting a cubic through the two
// acceleration/jerk samples; snap is its second derivative at the start
// of the step and crackle its (constant) third derivative.
func deriveSnapCrackle(oldAcc, oldJerk, newAcc, newJerk vecmath.Vector3D, dt float64) (snap, crackle vecmath.Vector3D) {
	if dt == 0 {
		return vecmath.Vector3D{}, vecmath.Vector3D{}
	}
	dtInv := 1 / dt
	dAcc := oldAcc.Sub(newAcc)
	jSum := oldJerk.Scale(4).Add(newJerk.Scale(2))
	snap = dAcc.Scale(-6).Sub(jSum.Scale(dt)).Scale(dtInv * dtInv)

	jSum2 := oldJerk.Add(newJerk)
	crackle = dAcc.Scale(12).Add(jSum2.Scale(6 * dt)).Scale(dtInv * dtInv * dtInv)
	return snap, crackle
}

func (h *HITS) SystemTime() float64  { return h.time }
func (h *HITS) System() nbody.System { return h.system.Clone() }

func (h *HITS) CopySystemInto(dst *nbody.System) { h.system.CopyInto(dst) }

func (h *HITS) computeAllAccJerk(ctx context.Context, s nbody.System) ([]vecmath.Vector3D, []vecmath.Vector3D, error) {
	n := s.Count()
	acc := make([]vecmath.Vector3D, n)
	jerk := make([]vecmath.Vector3D, n)
	softeningSqr := h.settings.Softening * h.settings.Softening

	err := parallelFor(ctx, n, func(start, end int) {
		for i := start; i < end; i++ {
			var accI, jerkI vecmath.Vector3D
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				a, jk := accJerkContribution(s.Positions[i], s.Velocities[i], s.Positions[j], s.Velocities[j], s.Masses[j], softeningSqr)
				accI = accI.Add(a)
				jerkI = jerkI.Add(jk)
			}
			acc[i] = accI
			jerk[i] = jerkI
		}
	})
	return acc, jerk, err
}

// initialTimeStep seeds every particle's first timestep at t=0, before
// any step has run a corrector and so before snap/crackle can be
// recovered by finite-differencing. It falls back to the
// acceleration/jerk-only form of the criterion (snap = crackle = 0),
// which the very first Reschedule call then refines once real
// differences are available.
func (h *HITS) initialTimeStep(acc, jerk vecmath.Vector3D) float64 {
	return h.adaptiveTimeStep(acc, jerk, vecmath.Vector3D{}, vecmath.Vector3D{})
}

// adaptiveTimeStep is the full Aarseth criterion (Makino 1991):
// Δt = η·√(‖a‖·‖snap‖ + ‖j‖²) / (‖j‖·‖crackle‖ + ‖snap‖²).
func (h *HITS) adaptiveTimeStep(acc, jerk, snap, crackle vecmath.Vector3D) float64 {
	jerkNorm := jerk.Norm()
	denom := jerkNorm*crackle.Norm() + snap.Norm2()
	if denom == 0 {
		if jerkNorm == 0 {
			return h.settings.TimeStepParameter
		}
		return h.settings.TimeStepParameter * math.Sqrt(acc.Norm()/jerkNorm)
	}
	numer := acc.Norm()*snap.Norm() + jerkNorm*jerkNorm
	return h.settings.TimeStepParameter * math.Sqrt(numer) / denom
}
