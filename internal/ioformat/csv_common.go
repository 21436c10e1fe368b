// Package ioformat implements the module's CSV surface: trajectory and
// diagnostics writers, a system/stream reader, and a trajectory file
// validator, all sharing one row-parsing path.
package ioformat

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// systemCSVFieldCount is pos_x,pos_y,pos_z,vel_x,vel_y,vel_z,mass.
const systemCSVFieldCount = 7

// ParseSystemCSV reads a System from r in the shared
// pos_x,pos_y,pos_z,vel_x,vel_y,vel_z,mass schema. The header row is
// always skipped. Rows with fewer than 7 fields, or any unparseable
// field, are silently dropped rather than failing the whole read —
// matching the original stream generator's permissive behavior.
func ParseSystemCSV(r io.Reader) (nbody.System, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nbody.System{}, err
	}
	if len(records) == 0 {
		return nbody.NewSystem(0), nil
	}

	// First row is the header.
	records = records[1:]

	positions := make([]vecmath.Vector3D, 0, len(records))
	velocities := make([]vecmath.Vector3D, 0, len(records))
	masses := make([]float64, 0, len(records))

	for _, row := range records {
		if len(row) < systemCSVFieldCount {
			continue
		}

		values, ok := parseFloats(row[:systemCSVFieldCount])
		if !ok {
			continue
		}

		positions = append(positions, vecmath.Vector3D{X: values[0], Y: values[1], Z: values[2]})
		velocities = append(velocities, vecmath.Vector3D{X: values[3], Y: values[4], Z: values[5]})
		masses = append(masses, values[6])
	}

	return nbody.System{Positions: positions, Velocities: velocities, Masses: masses}, nil
}

// parseFloats parses every field in fields, returning ok=false on the
// first unparseable one.
func parseFloats(fields []string) ([]float64, bool) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// formatField renders a float at max precision, the Go equivalent of
// C++'s max_digits10 — "-1" is the shortest decimal string that
// round-trips back to the same float64.
func formatField(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
