// Package barneshut implements an octree-based O(N log N) gravity
// approximation: the tree groups distant particles into a single
// centre-of-mass pseudo-particle once the multipole acceptance
// criterion is satisfied, instead of summing every pairwise force.
package barneshut

import "github.com/san-kum/dynsim/internal/vecmath"

// Cube is an axis-aligned bounding volume, the Barnes-Hut analogue of
// the octree's Center/HalfSize representation.
type Cube struct {
	Center   vecmath.Vector3D
	HalfSize float64
}

// octant returns which of the cube's eight children pos falls in,
// bit-packed the same way the corpus's perception octree does
// (bit 0 = X, bit 1 = Y, bit 2 = Z).
func (c Cube) octant(pos vecmath.Vector3D) int {
	octant := 0
	if pos.X >= c.Center.X {
		octant |= 1
	}
	if pos.Y >= c.Center.Y {
		octant |= 2
	}
	if pos.Z >= c.Center.Z {
		octant |= 4
	}
	return octant
}

// child returns the bounding cube of the given octant.
func (c Cube) child(octant int) Cube {
	offset := c.HalfSize / 2
	center := c.Center
	if octant&1 != 0 {
		center.X += offset
	} else {
		center.X -= offset
	}
	if octant&2 != 0 {
		center.Y += offset
	} else {
		center.Y -= offset
	}
	if octant&4 != 0 {
		center.Z += offset
	} else {
		center.Z -= offset
	}
	return Cube{Center: center, HalfSize: offset}
}

// node is one arena slot: either a leaf holding a single particle
// index, or an internal node holding the aggregate mass/centre-of-mass
// of everything beneath it and up to eight child indices. A zero value
// (children all -1, particle -1) is an empty, unused slot.
type node struct {
	bounds       Cube
	mass         float64
	centerOfMass vecmath.Vector3D
	particle     int    // index into the built System, or -1 for internal nodes
	children     [8]int32 // arena indices, -1 when absent
	leaf         bool
}

func emptyNode(bounds Cube) node {
	n := node{bounds: bounds, particle: -1, leaf: true}
	for i := range n.children {
		n.children[i] = -1
	}
	return n
}
