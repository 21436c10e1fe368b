package barneshut

import (
	"math"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

const maxInsertDepth = 64

// Tree is an octree over one System snapshot, arena-backed so that
// repeated Build calls across simulation steps reuse the same backing
// slice instead of allocating a fresh tree of pointers every step.
type Tree struct {
	arena  []node
	root   int32
	count  int
	system nbody.System
}

// NewTree returns an empty Tree. The arena grows on demand and is never
// shrunk; a Tree built once and reused across steps settles at the
// capacity its largest system needs.
func NewTree() *Tree {
	return &Tree{}
}

// Build resets the arena and re-inserts every particle of system within
// bounds, computing each internal node's aggregate mass and
// centre-of-mass for the multipole acceptance test AccelerationAt uses.
func (t *Tree) Build(system nbody.System, bounds Cube) {
	t.arena = t.arena[:0]
	t.count = system.Count()
	t.system = system
	if t.count == 0 {
		t.root = -1
		return
	}

	t.root = t.alloc(emptyNode(bounds))
	for i := 0; i < t.count; i++ {
		t.insert(t.root, i, system, 0)
	}
	t.aggregate(t.root, system)
}

func (t *Tree) alloc(n node) int32 {
	t.arena = append(t.arena, n)
	return int32(len(t.arena) - 1)
}

// insert places particle i into the subtree rooted at idx, splitting
// leaves as needed. depth guards against infinite recursion when two
// particles sit at (near-)identical positions; beyond maxInsertDepth
// the new particle is simply appended as a sibling leaf instead of
// splitting forever.
func (t *Tree) insert(idx int32, particle int, system nbody.System, depth int) {
	n := &t.arena[idx]

	if n.leaf && n.particle == -1 {
		n.particle = particle
		return
	}

	if n.leaf {
		existing := n.particle
		n.particle = -1
		n.leaf = false

		if depth >= maxInsertDepth {
			// Degenerate coincident-position case: keep both particles
			// as leaves under arbitrary distinct octants 0 and 1 rather
			// than recursing forever.
			n.children[0] = t.alloc(emptyNode(n.bounds.child(0)))
			t.arena[n.children[0]].particle = existing
			n.children[1] = t.alloc(emptyNode(n.bounds.child(1)))
			t.arena[n.children[1]].particle = particle
			return
		}

		t.insertIntoChild(idx, existing, system, depth)
	}

	t.insertIntoChild(idx, particle, system, depth)
}

func (t *Tree) insertIntoChild(idx int32, particle int, system nbody.System, depth int) {
	n := &t.arena[idx]
	octant := n.bounds.octant(system.Positions[particle])
	child := n.children[octant]
	if child == -1 {
		child = t.alloc(emptyNode(n.bounds.child(octant)))
		t.arena[idx].children[octant] = child
	}
	t.insert(child, particle, system, depth+1)
}

// aggregate computes mass and centre-of-mass bottom-up. Leaves take
// their single particle's mass/position directly; internal nodes sum
// their children's already-aggregated mass/com.
func (t *Tree) aggregate(idx int32, system nbody.System) (float64, vecmath.Vector3D) {
	n := &t.arena[idx]

	if n.leaf {
		if n.particle == -1 {
			n.mass = 0
			n.centerOfMass = vecmath.Vector3D{}
			return 0, vecmath.Vector3D{}
		}
		n.mass = system.Masses[n.particle]
		n.centerOfMass = system.Positions[n.particle]
		return n.mass, n.centerOfMass
	}

	var totalMass float64
	var weighted vecmath.Vector3D
	for _, child := range n.children {
		if child == -1 {
			continue
		}
		mass, com := t.aggregate(child, system)
		totalMass += mass
		weighted = weighted.Add(com.Scale(mass))
	}

	n.mass = totalMass
	if totalMass > 0 {
		n.centerOfMass = weighted.Scale(1.0 / totalMass)
	}
	return n.mass, n.centerOfMass
}

// AccelerationAt walks the tree for particle i, descending into a node
// only when its bounding cube fails the multipole acceptance test
// (s² >= thetaSqr * d², s the node's side length, d the distance from i
// to the node's centre-of-mass); otherwise the node's aggregate
// mass/centre-of-mass is applied as one pseudo-particle.
func (t *Tree) AccelerationAt(i int, thetaSqr, softeningSqr float64) vecmath.Vector3D {
	if t.root == -1 {
		return vecmath.Vector3D{}
	}
	var acc vecmath.Vector3D
	t.walk(t.root, i, t.system, thetaSqr, softeningSqr, &acc)
	return acc
}

func (t *Tree) walk(idx int32, i int, system nbody.System, thetaSqr, softeningSqr float64, acc *vecmath.Vector3D) {
	n := &t.arena[idx]
	if n.mass == 0 {
		return
	}

	if n.leaf {
		if n.particle == i || n.particle == -1 {
			return
		}
		*acc = acc.Add(pointAcceleration(system.Positions[i], n.centerOfMass, n.mass, softeningSqr))
		return
	}

	d2 := system.Positions[i].Sub(n.centerOfMass).Norm2()
	side := n.bounds.HalfSize * 2
	if side*side < thetaSqr*d2 {
		*acc = acc.Add(pointAcceleration(system.Positions[i], n.centerOfMass, n.mass, softeningSqr))
		return
	}

	for _, child := range n.children {
		if child == -1 {
			continue
		}
		t.walk(child, i, system, thetaSqr, softeningSqr, acc)
	}
}

// pointAcceleration is the softened Newtonian acceleration contributed
// by a point mass at com on a unit test particle at pos.
func pointAcceleration(pos, com vecmath.Vector3D, mass, softeningSqr float64) vecmath.Vector3D {
	delta := com.Sub(pos)
	d2 := delta.Norm2() + softeningSqr
	invDist3 := 1.0 / (d2 * math.Sqrt(d2))
	return delta.Scale(nbody.HenonGravitationalConstant * mass * invDist3)
}
