package render

import (
	"strings"
	"testing"
)

func TestCanvasToSVG_NilCanvasIsEmpty(t *testing.T) {
	if got := CanvasToSVG(nil, 4); got != "" {
		t.Fatalf("CanvasToSVG(nil) = %q, want empty", got)
	}
}

func TestCanvasToSVG_EmitsOneCirclePerLitDot(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Set(1, 1)
	svg := CanvasToSVG(c, 4)

	if !strings.Contains(svg, "<svg") {
		t.Fatal("output is not an SVG document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Fatalf("got %d circles, want 2", n)
	}
}

func TestSystemToSVG_EmptySystemIsEmpty(t *testing.T) {
	if got := SystemToSVG(twoParticleSystem(), 0, 0); got == "" {
		t.Fatal("non-empty system should still render a document even with a zero viewport")
	}
	var empty = twoParticleSystem()
	empty.Positions = nil
	empty.Velocities = nil
	empty.Masses = nil
	if got := SystemToSVG(empty, 200, 100); got != "" {
		t.Fatalf("SystemToSVG(empty) = %q, want empty", got)
	}
}

func TestSystemToSVG_OneCirclePerParticle(t *testing.T) {
	s := twoParticleSystem()
	svg := SystemToSVG(s, 200, 100)
	if n := strings.Count(svg, "<circle"); n != s.Count() {
		t.Fatalf("got %d circles, want %d", n, s.Count())
	}
}
