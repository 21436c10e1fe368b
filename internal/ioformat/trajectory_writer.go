package ioformat

import (
	"encoding/csv"
	"os"

	"github.com/san-kum/dynsim/internal/nbody"
)

var trajectoryHeader = []string{"time", "pos_x", "pos_y", "pos_z", "vel_x", "vel_y", "vel_z", "mass"}

// TrajectoryWriter appends one row per particle per sampled time to a
// CSV file, grounded on the teacher's Store.Save: a header is emitted
// only the first time a path is opened (checked via os.Stat, matching
// spec.md's "header emitted only when the file doesn't already exist")
// and the file is subsequently opened append-only so repeated runs
// against the same path extend rather than truncate it.
type TrajectoryWriter struct {
	file *os.File
	w    *csv.Writer
}

// NewTrajectoryWriter opens path for appending, creating it (with a
// header row) if it doesn't already exist.
func NewTrajectoryWriter(path string) (*TrajectoryWriter, error) {
	needsHeader := true
	if _, err := os.Stat(path); err == nil {
		needsHeader = false
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(file)
	if needsHeader {
		if err := w.Write(trajectoryHeader); err != nil {
			file.Close()
			return nil, err
		}
	}

	return &TrajectoryWriter{file: file, w: w}, nil
}

// WriteSnapshot appends one row per particle of snap.Data at snap.Time.
func (tw *TrajectoryWriter) WriteSnapshot(snap nbody.Snapshot[nbody.System]) error {
	timeField := formatField(snap.Time)
	for i := 0; i < snap.Data.Count(); i++ {
		p := snap.Data.Positions[i]
		v := snap.Data.Velocities[i]
		row := []string{
			timeField,
			formatField(p.X), formatField(p.Y), formatField(p.Z),
			formatField(v.X), formatField(v.Y), formatField(v.Z),
			formatField(snap.Data.Masses[i]),
		}
		if err := tw.w.Write(row); err != nil {
			return err
		}
	}
	tw.w.Flush()
	return tw.w.Error()
}

// Close flushes and closes the underlying file.
func (tw *TrajectoryWriter) Close() error {
	tw.w.Flush()
	if err := tw.w.Error(); err != nil {
		tw.file.Close()
		return err
	}
	return tw.file.Close()
}
