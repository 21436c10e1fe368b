package render

import (
	"testing"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

func twoParticleSystem() nbody.System {
	s := nbody.NewSystem(2)
	s.Positions[0] = vecmath.Vector3D{X: -1, Y: -1, Z: 0}
	s.Positions[1] = vecmath.Vector3D{X: 1, Y: 1, Z: 0}
	s.Masses[0] = 1
	s.Masses[1] = 4
	return s
}

func TestNewProjection_EmptySystemFallsBackToUnitBox(t *testing.T) {
	p := NewProjection(nbody.NewSystem(0), 80, 40)
	if p.MinX != -1 || p.MaxX != 1 || p.MinY != -1 || p.MaxY != 1 {
		t.Fatalf("empty system projection = %+v, want [-1,1] box", p)
	}
}

func TestNewProjection_PadsBoundingBox(t *testing.T) {
	p := NewProjection(twoParticleSystem(), 80, 40)
	if p.MinX >= -1 || p.MaxX <= 1 {
		t.Fatalf("projection %+v does not pad beyond the particle extent", p)
	}
}

func TestPointXY_MapsIntoSubPixelBounds(t *testing.T) {
	s := twoParticleSystem()
	p := NewProjection(s, 80, 40)
	for _, pos := range s.Positions {
		x, y := p.PointXY(pos.X, pos.Y)
		if x < 0 || x > p.SubWidth || y < 0 || y > p.SubHeight {
			t.Fatalf("PointXY(%v, %v) = (%d, %d), out of [0,%d]x[0,%d]", pos.X, pos.Y, x, y, p.SubWidth, p.SubHeight)
		}
	}
}

func TestPointXY_FlipsYAxis(t *testing.T) {
	p := Projection{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10, SubWidth: 100, SubHeight: 100}
	_, yTop := p.PointXY(5, 10)
	_, yBottom := p.PointXY(5, 0)
	if yTop >= yBottom {
		t.Fatalf("higher physical Y (%d) did not render above lower Y (%d)", yTop, yBottom)
	}
}

func TestDrawSystem_LightsEveryParticle(t *testing.T) {
	s := twoParticleSystem()
	p := NewProjection(s, 80, 40)
	c := NewCanvas(80, 40)
	DrawSystem(c, p, s)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("DrawSystem lit no cells")
	}
}
