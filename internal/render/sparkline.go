package render

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dynsim/internal/nbody"
)

// History accumulates a rolling window of Diagnostics samples for
// asciigraph plotting, the live counterpart of plotRun's post-hoc
// per-variable asciigraph.Plot calls over a full stored run.
type History struct {
	capacity int
	energy   []float64
	virial   []float64
}

// NewHistory returns a History that retains at most capacity samples
// per series, discarding the oldest once full.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{capacity: capacity}
}

// Push appends one diagnostics sample, tracking total energy
// (EKin + EPot) and the virial ratio 2*EKin/|EPot|.
func (h *History) Push(d nbody.Diagnostics) {
	h.energy = appendCapped(h.energy, d.EKin+d.EPot, h.capacity)

	virial := 0.0
	if d.EPot != 0 {
		virial = 2 * d.EKin / -d.EPot
	}
	h.virial = appendCapped(h.virial, virial, h.capacity)
}

func appendCapped(series []float64, v float64, capacity int) []float64 {
	series = append(series, v)
	if len(series) > capacity {
		series = series[len(series)-capacity:]
	}
	return series
}

// EnergyPlot renders the accumulated total-energy history as an
// asciigraph sparkline. Returns "" until at least two samples exist.
func (h *History) EnergyPlot(width, height int) string {
	if len(h.energy) < 2 {
		return ""
	}
	return asciigraph.Plot(h.energy,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("total energy"),
	)
}

// VirialPlot renders the accumulated virial-ratio history.
func (h *History) VirialPlot(width, height int) string {
	if len(h.virial) < 2 {
		return ""
	}
	return asciigraph.Plot(h.virial,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("virial ratio 2T/|U|"),
	)
}
