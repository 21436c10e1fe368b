package nbody

import (
	"fmt"
	"math"

	"github.com/san-kum/dynsim/internal/vecmath"
)

// GravitationalConstant is Newton's G in parsecs, solar masses and
// kilometres per second — the units the Plummer/Hénon-scaling formulas
// are defined in. It is consulted by the generators (which build systems
// in physical units) and by ScaleToHenonUnits itself (which needs the
// physical G to derive the scale factors that put the result in Hénon
// units). Everything downstream of ScaleToHenonUnits — every integrator's
// force/jerk evaluation and ComputeDiagnostics — instead uses
// HenonGravitationalConstant, since by construction G=1 once a system
// has been rescaled.
const GravitationalConstant = 0.004300917271

// HenonGravitationalConstant is G in the standard N-body (Hénon) unit
// system ScaleToHenonUnits produces: total mass 1, G 1, total energy −¼.
const HenonGravitationalConstant = 1.0

// KineticEnergy returns ½ Σ mᵢ‖vᵢ‖².
func KineticEnergy(s System) float64 {
	e := 0.0
	for i, v := range s.Velocities {
		e += s.Masses[i] * v.Norm2()
	}
	return 0.5 * e
}

// PotentialEnergy returns −g Σ_{i<j} mᵢmⱼ/√(‖rᵢ−rⱼ‖²+ε²), ε the
// softening length (not squared). Callers pass GravitationalConstant for
// a system still in physical units, or HenonGravitationalConstant once
// ScaleToHenonUnits has run.
func PotentialEnergy(s System, softening, g float64) float64 {
	eps2 := softening * softening
	e := 0.0
	n := s.Count()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d2 := s.Positions[i].Sub(s.Positions[j]).Norm2() + eps2
			e -= s.Masses[i] * s.Masses[j] / math.Sqrt(d2)
		}
	}
	return g * e
}

// AngularMomentum returns Σ wedge(rᵢ, mᵢvᵢ) as a bivector (the plane and
// magnitude of the system's total orbital angular momentum).
func AngularMomentum(s System) vecmath.Bivector3D {
	var total vecmath.Bivector3D
	for i, r := range s.Positions {
		total = total.Add(vecmath.Wedge(r, s.Velocities[i].Scale(s.Masses[i])))
	}
	return total
}

// CenterOfMassPos returns (Σ mᵢrᵢ)/Σmᵢ. Returns the zero vector for an
// empty or massless system.
func CenterOfMassPos(s System) vecmath.Vector3D {
	var com vecmath.Vector3D
	total := 0.0
	for i, r := range s.Positions {
		com = com.Add(r.Scale(s.Masses[i]))
		total += s.Masses[i]
	}
	if total == 0 {
		return com
	}
	return com.Scale(1 / total)
}

// CenterOfMassVel returns (Σ mᵢvᵢ)/Σmᵢ.
func CenterOfMassVel(s System) vecmath.Vector3D {
	var com vecmath.Vector3D
	total := 0.0
	for i, v := range s.Velocities {
		com = com.Add(v.Scale(s.Masses[i]))
		total += s.Masses[i]
	}
	if total == 0 {
		return com
	}
	return com.Scale(1 / total)
}

// CenterSystem translates s in place so its centre of mass sits at the
// origin in both position and velocity.
func CenterSystem(s System) {
	comPos := CenterOfMassPos(s)
	comVel := CenterOfMassVel(s)
	for i := range s.Positions {
		s.Positions[i] = s.Positions[i].Sub(comPos)
		s.Velocities[i] = s.Velocities[i].Sub(comVel)
	}
}

// ScaleToHenonUnits rescales s in place to standard N-body (Hénon)
// units: total mass 1, gravitational constant 1, total energy −¼.
// targetEnergyMag is the magnitude of the system's current total energy
// (|e_kin + e_pot|, computed by the caller with GravitationalConstant
// before this call); it must be strictly positive — a system with zero
// or unbound (non-negative) total energy has no finite Hénon scale.
//
// The scale factors are the unique (posScale, velScale) satisfying the
// three defining constraints simultaneously: normalizing masses by the
// total mass M, then position/velocity scaling transforms G·M=1 and
// e_kin+e_pot=−¼ at once, since both energy terms turn out to scale by
// the same velScale²/M factor once posScale is eliminated via the G=1
// constraint.
func ScaleToHenonUnits(s System, targetEnergyMag float64) error {
	if targetEnergyMag <= 0 {
		return fmt.Errorf("%w: non-positive target energy magnitude %g", ErrInvalidSettings, targetEnergyMag)
	}

	totalMass := s.TotalMass()
	if totalMass <= 0 {
		return fmt.Errorf("%w: non-positive total mass %g", ErrInvalidSettings, totalMass)
	}

	velScale := math.Sqrt(totalMass / (4 * targetEnergyMag))
	posScale := 4 * targetEnergyMag / (GravitationalConstant * totalMass * totalMass)

	for i := range s.Masses {
		s.Masses[i] /= totalMass
		s.Positions[i] = s.Positions[i].Scale(posScale)
		s.Velocities[i] = s.Velocities[i].Scale(velScale)
	}
	return nil
}

// Diagnostics is the set of scalar/vector functionals of a System
// sampled onto the diagnostics stream.
type Diagnostics struct {
	EKin   float64
	EPot   float64
	LTot   vecmath.Bivector3D
	ComPos vecmath.Vector3D
	ComVel vecmath.Vector3D
	RVir   float64
	MsVel  float64
	TCr    float64
}

// ComputeDiagnostics evaluates every Diagnostics field against s with
// the given softening length. s is assumed already in Hénon units (the
// state every integrator carries after SetSystem), so potential energy
// and virial radius use HenonGravitationalConstant rather than the
// physical G.
func ComputeDiagnostics(s System, softening float64) Diagnostics {
	ekin := KineticEnergy(s)
	epot := PotentialEnergy(s, softening, HenonGravitationalConstant)
	totalMass := s.TotalMass()

	d := Diagnostics{
		EKin:   ekin,
		EPot:   epot,
		LTot:   AngularMomentum(s),
		ComPos: CenterOfMassPos(s),
		ComVel: CenterOfMassVel(s),
	}

	if epot < 0 && totalMass > 0 {
		d.RVir = HenonGravitationalConstant * totalMass * totalMass / (2 * math.Abs(epot))
	}
	if totalMass > 0 {
		d.MsVel = 2 * ekin / totalMass
	}
	if d.MsVel > 0 {
		d.TCr = d.RVir / math.Sqrt(d.MsVel)
	}

	return d
}
