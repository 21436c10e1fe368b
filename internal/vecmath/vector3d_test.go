package vecmath

import (
	"math"
	"testing"
)

func TestVector3D_Norm(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3D
		want float64
	}{
		{"zero", Vector3D{0, 0, 0}, 0},
		{"unit x", Vector3D{1, 0, 0}, 1},
		{"3-4-0", Vector3D{3, 4, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Norm(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVector3D_SetNorm(t *testing.T) {
	v := Vector3D{3, 4, 0}.SetNorm(10)
	if math.Abs(v.Norm()-10) > 1e-9 {
		t.Errorf("SetNorm() norm = %v, want 10", v.Norm())
	}

	zero := Vector3D{}.SetNorm(5)
	if zero != (Vector3D{}) {
		t.Errorf("SetNorm() on zero vector = %v, want zero vector unchanged", zero)
	}
}

func TestVector3D_AddSubScale(t *testing.T) {
	a := Vector3D{1, 2, 3}
	b := Vector3D{4, 5, 6}

	if got := a.Add(b); got != (Vector3D{5, 7, 9}) {
		t.Errorf("Add() = %v", got)
	}
	if got := b.Sub(a); got != (Vector3D{3, 3, 3}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Scale(2); got != (Vector3D{2, 4, 6}) {
		t.Errorf("Scale() = %v", got)
	}
}

func TestVector3D_Dot(t *testing.T) {
	a := Vector3D{1, 0, 0}
	b := Vector3D{0, 1, 0}
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot() = %v, want 0", got)
	}
	if got := a.Dot(a); got != 1 {
		t.Errorf("Dot() = %v, want 1", got)
	}
}
