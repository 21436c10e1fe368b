package generation

import (
	"io"

	"github.com/san-kum/dynsim/internal/ioformat"
	"github.com/san-kum/dynsim/internal/nbody"
)

// StreamGenerator reads an initial System directly from a CSV stream
// instead of synthesizing one. Unlike the other generators it has no
// Settings struct or seed — its only configuration is the reader.
type StreamGenerator struct {
	r io.Reader
}

// NewStreamGenerator wraps r as a Generator.
func NewStreamGenerator(r io.Reader) *StreamGenerator {
	return &StreamGenerator{r: r}
}

func (g *StreamGenerator) CreateSystem() (nbody.System, error) {
	return ioformat.ParseSystemCSV(g.r)
}
