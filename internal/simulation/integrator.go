// Package simulation implements the five N-body time-integration
// methods: direct-summation Euler and Leapfrog, a global 4th-order
// Hermite predictor-corrector, Hermite with individual particle time
// steps (HITS), and Barnes-Hut accelerated Leapfrog.
package simulation

import (
	"context"
	"fmt"

	"github.com/san-kum/dynsim/internal/nbody"
)

// Method identifies one of the five integration algorithms by the same
// display strings the original tool's method-selection dropdown used.
type Method string

const (
	MethodEuler             Method = "Euler"
	MethodLeapfrog          Method = "Leapfrog"
	MethodHermite           Method = "Hermite"
	MethodHITS              Method = "Hermite Individual Time Steps"
	MethodBarnesHutLeapfrog Method = "Barnes-Hut Algorithm (Leapfrog)"
)

var methodStrings = [...]Method{
	MethodEuler, MethodLeapfrog, MethodHermite, MethodHITS, MethodBarnesHutLeapfrog,
}

// ParseMethod looks up a Method by its display string, the Go rendering
// of the original lookup-array's toSimulationMethod.
func ParseMethod(s string) (Method, error) {
	for _, m := range methodStrings {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: unrecognized integration method %q", nbody.ErrInvalidSettings, s)
}

func (m Method) String() string { return string(m) }

// Integrator advances one System forward in time under some
// force/time-stepping rule. SetSystem rescales the given initial system
// into Hénon units and must be called exactly once before Step.
type Integrator interface {
	SetSystem(initial nbody.System) error
	Step(ctx context.Context) error
	SystemTime() float64
	System() nbody.System

	// CopySystemInto copies the integrator's current state into dst in
	// place (via nbody.System.CopyInto), reusing dst's backing arrays
	// instead of allocating a fresh clone. Lets a caller holding a
	// pool-leased buffer refill it without per-sample heap traffic.
	CopySystemInto(dst *nbody.System)
}

// scaleInitialSystem centres s and rescales it to Hénon units in place,
// the setup every integrator performs before its first force
// evaluation — grounded on the original simulators' setSystem: compute
// kinetic+potential energy, then scale to the Hénon-unit target before
// accelerations are ever evaluated.
func scaleInitialSystem(s nbody.System, softening float64) error {
	if s.Count() == 0 {
		return fmt.Errorf("%w: cannot integrate an empty system", nbody.ErrEmptySystem)
	}
	nbody.CenterSystem(s)
	ekin := nbody.KineticEnergy(s)
	epot := nbody.PotentialEnergy(s, softening, nbody.GravitationalConstant)
	return nbody.ScaleToHenonUnits(s, absf(ekin+epot))
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
