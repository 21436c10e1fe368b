package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/dynsim/internal/nbody"
)

// CanvasToSVG converts a braille Canvas into an SVG document, adapted
// from the teacher's export.CanvasToSVG: every lit sub-pixel dot
// becomes one circle.
func CanvasToSVG(canvas *Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SystemToSVG renders one System snapshot as an XY scatter plot, sized
// so that the heaviest particle (usually a black hole or flyby
// intruder) draws as the largest dot.
func SystemToSVG(s nbody.System, width, height int) string {
	if s.Count() == 0 {
		return ""
	}

	proj := NewProjection(s, width, height)

	maxMass := s.Masses[0]
	for _, m := range s.Masses {
		if m > maxMass {
			maxMass = m
		}
	}
	if maxMass <= 0 {
		maxMass = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#8fd6ff">
`, width, height, width, height))

	for i, pos := range s.Positions {
		sx, sy := proj.PointXY(pos.X, pos.Y)
		radius := 1.0 + 4.0*(s.Masses[i]/maxMass)
		sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%.2f"/>
`, sx/2, sy/4, radius))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
