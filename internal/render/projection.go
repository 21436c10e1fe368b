package render

import "github.com/san-kum/dynsim/internal/nbody"

// Projection maps a System's 3D positions onto a fixed-size 2D
// sub-pixel grid by dropping the Z axis and scaling the XY extent to
// fill the canvas, the N-body counterpart of the teacher's phase-plot
// bounds-and-scale logic in cmd/dynsim/main.go's phasePlot.
type Projection struct {
	MinX, MaxX float64
	MinY, MaxY float64
	SubWidth   int
	SubHeight  int
}

// NewProjection computes a Projection that fits every particle in s
// within a subWidth x subHeight sub-pixel grid, with 10% padding.
func NewProjection(s nbody.System, subWidth, subHeight int) Projection {
	if s.Count() == 0 {
		return Projection{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1, SubWidth: subWidth, SubHeight: subHeight}
	}

	minX, maxX := s.Positions[0].X, s.Positions[0].X
	minY, maxY := s.Positions[0].Y, s.Positions[0].Y
	for _, p := range s.Positions {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1

	return Projection{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY, SubWidth: subWidth, SubHeight: subHeight}
}

// PointXY maps a single (x, y) physical coordinate to sub-pixel space,
// flipping Y so increasing physical Y renders upward.
func (p Projection) PointXY(x, y float64) (int, int) {
	rangeX := p.MaxX - p.MinX
	rangeY := p.MaxY - p.MinY
	sx := int((x - p.MinX) / rangeX * float64(p.SubWidth))
	sy := int(float64(p.SubHeight) - (y-p.MinY)/rangeY*float64(p.SubHeight))
	return sx, sy
}

// DrawSystem plots every particle of s onto canvas using p.
func DrawSystem(canvas *Canvas, p Projection, s nbody.System) {
	for _, pos := range s.Positions {
		x, y := p.PointXY(pos.X, pos.Y)
		canvas.Set(x, y)
	}
}
