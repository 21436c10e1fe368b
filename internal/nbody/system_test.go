package nbody

import (
	"testing"

	"github.com/san-kum/dynsim/internal/vecmath"
)

func TestNewSystem_EqualLengthSlices(t *testing.T) {
	s := NewSystem(7)
	if len(s.Positions) != 7 || len(s.Velocities) != 7 || len(s.Masses) != 7 {
		t.Fatalf("NewSystem(7) produced mismatched slice lengths: %d/%d/%d",
			len(s.Positions), len(s.Velocities), len(s.Masses))
	}
	if s.Count() != 7 {
		t.Errorf("Count() = %d, want 7", s.Count())
	}
}

func TestSystem_CloneIsIndependent(t *testing.T) {
	s := NewSystem(2)
	s.Positions[0] = vecmath.Vector3D{X: 1, Y: 2, Z: 3}
	s.Masses[0] = 5

	clone := s.Clone()
	clone.Positions[0] = vecmath.Vector3D{X: 9, Y: 9, Z: 9}
	clone.Masses[0] = 100

	if s.Positions[0] == clone.Positions[0] {
		t.Error("Clone() aliases the source position slice")
	}
	if s.Masses[0] == clone.Masses[0] {
		t.Error("Clone() aliases the source mass slice")
	}
}

func TestSystem_CopyIntoReusesBackingArrays(t *testing.T) {
	src := NewSystem(3)
	src.Masses[0], src.Masses[1], src.Masses[2] = 1, 2, 3

	dst := NewSystem(3)
	backing := &dst.Masses[0]

	src.CopyInto(&dst)

	if &dst.Masses[0] != backing {
		t.Error("CopyInto() reallocated a same-length destination slice")
	}
	if dst.Masses[0] != 1 || dst.Masses[1] != 2 || dst.Masses[2] != 3 {
		t.Errorf("CopyInto() masses = %v, want [1 2 3]", dst.Masses)
	}
}

func TestSystem_TotalMass(t *testing.T) {
	s := NewSystem(3)
	s.Masses[0], s.Masses[1], s.Masses[2] = 1.5, 2.5, 1.0
	if got := s.TotalMass(); got != 5.0 {
		t.Errorf("TotalMass() = %v, want 5", got)
	}
}
