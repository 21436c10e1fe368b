// Package nbody holds the particle data model, physics functionals and
// scheduling primitives shared by every generator and integrator.
package nbody

import "github.com/san-kum/dynsim/internal/vecmath"

// System is the structure-of-arrays particle container every generator
// produces and every integrator owns for the life of a run.
type System struct {
	Positions  []vecmath.Vector3D
	Velocities []vecmath.Vector3D
	Masses     []float64
}

// NewSystem allocates a System sized for n particles with all three
// slices kept at equal length, the invariant every other function in
// this package relies on.
func NewSystem(n int) System {
	return System{
		Positions:  make([]vecmath.Vector3D, n),
		Velocities: make([]vecmath.Vector3D, n),
		Masses:     make([]float64, n),
	}
}

// Count returns the number of particles in the system.
func (s System) Count() int {
	return len(s.Masses)
}

// Clone returns a deep copy, so the returned System can be mutated
// (or leased out through a buffer pool) without aliasing s.
func (s System) Clone() System {
	out := System{
		Positions:  make([]vecmath.Vector3D, len(s.Positions)),
		Velocities: make([]vecmath.Vector3D, len(s.Velocities)),
		Masses:     make([]float64, len(s.Masses)),
	}
	copy(out.Positions, s.Positions)
	copy(out.Velocities, s.Velocities)
	copy(out.Masses, s.Masses)
	return out
}

// CopyInto copies s's data into dst in place, reusing dst's backing
// arrays when they are already the right length. Used by the runner to
// refill a leased buffer-pool System without allocating.
func (s System) CopyInto(dst *System) {
	if cap(dst.Positions) < len(s.Positions) {
		dst.Positions = make([]vecmath.Vector3D, len(s.Positions))
	}
	if cap(dst.Velocities) < len(s.Velocities) {
		dst.Velocities = make([]vecmath.Vector3D, len(s.Velocities))
	}
	if cap(dst.Masses) < len(s.Masses) {
		dst.Masses = make([]float64, len(s.Masses))
	}
	dst.Positions = dst.Positions[:len(s.Positions)]
	dst.Velocities = dst.Velocities[:len(s.Velocities)]
	dst.Masses = dst.Masses[:len(s.Masses)]

	copy(dst.Positions, s.Positions)
	copy(dst.Velocities, s.Velocities)
	copy(dst.Masses, s.Masses)
}

// TotalMass sums every particle's mass.
func (s System) TotalMass() float64 {
	total := 0.0
	for _, m := range s.Masses {
		total += m
	}
	return total
}

// Snapshot pairs a value of any type with the system time it was taken
// at. Once published, consumers must treat Data as read-only.
type Snapshot[T any] struct {
	Time float64
	Data T
}
