package vecmath

import "math"

// Bivector3D is an oriented plane element spanned by the XY, XZ and YZ
// basis planes — the result of wedging two vectors together, and the
// carrier of angular-momentum-like quantities.
type Bivector3D struct {
	XY, XZ, YZ float64
}

// Wedge computes the exterior product a∧b.
func Wedge(a, b Vector3D) Bivector3D {
	return Bivector3D{
		XY: a.X*b.Y - a.Y*b.X,
		XZ: a.X*b.Z - a.Z*b.X,
		YZ: a.Y*b.Z - a.Z*b.Y,
	}
}

func (b Bivector3D) Add(o Bivector3D) Bivector3D {
	return Bivector3D{b.XY + o.XY, b.XZ + o.XZ, b.YZ + o.YZ}
}

func (b Bivector3D) Sub(o Bivector3D) Bivector3D {
	return Bivector3D{b.XY - o.XY, b.XZ - o.XZ, b.YZ - o.YZ}
}

func (b Bivector3D) Scale(s float64) Bivector3D {
	return Bivector3D{b.XY * s, b.XZ * s, b.YZ * s}
}

func (b Bivector3D) Norm2() float64 {
	return b.XY*b.XY + b.XZ*b.XZ + b.YZ*b.YZ
}

func (b Bivector3D) Norm() float64 {
	return math.Sqrt(b.Norm2())
}

// Perpendicular returns the vector dual to b (its Hodge dual in 3D),
// i.e. the normal of the plane b represents.
func (b Bivector3D) Perpendicular() Vector3D {
	return Vector3D{b.YZ, -b.XZ, b.XY}
}
