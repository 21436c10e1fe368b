package ioformat

import (
	"encoding/csv"
	"os"

	"github.com/san-kum/dynsim/internal/nbody"
)

var diagnosticsHeader = []string{
	"time", "e_kin", "e_pot", "L_tot",
	"com_pos_x", "com_pos_y", "com_pos_z",
	"com_vel_x", "com_vel_y", "com_vel_z",
	"r_vir", "ms_vel", "t_cr",
}

// DiagnosticsWriter appends one row per sampled time to a CSV file in
// the same header-once/append-after shape as TrajectoryWriter.
// L_tot serializes as the angular-momentum bivector's norm (a single
// scalar column): the original tool's operator<< streamed the whole
// struct, but the CSV schema here names one L_tot column, so only the
// magnitude survives — documented as a deliberate simplification rather
// than an oversight, since the bivector's plane is still recoverable
// from the position/velocity columns of the matching trajectory file.
type DiagnosticsWriter struct {
	file *os.File
	w    *csv.Writer
}

func NewDiagnosticsWriter(path string) (*DiagnosticsWriter, error) {
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
		if err := w.Write(diagnosticsHeader); err != nil {
			file.Close()
			return nil, err
		}
	}

	return &DiagnosticsWriter{file: file, w: w}, nil
}

func (dw *DiagnosticsWriter) WriteSnapshot(snap nbody.Snapshot[nbody.Diagnostics]) error {
	d := snap.Data
	row := []string{
		formatField(snap.Time),
		formatField(d.EKin), formatField(d.EPot), formatField(d.LTot.Norm()),
		formatField(d.ComPos.X), formatField(d.ComPos.Y), formatField(d.ComPos.Z),
		formatField(d.ComVel.X), formatField(d.ComVel.Y), formatField(d.ComVel.Z),
		formatField(d.RVir), formatField(d.MsVel), formatField(d.TCr),
	}
	if err := dw.w.Write(row); err != nil {
		return err
	}
	dw.w.Flush()
	return dw.w.Error()
}

func (dw *DiagnosticsWriter) Close() error {
	dw.w.Flush()
	if err := dw.w.Error(); err != nil {
		dw.file.Close()
		return err
	}
	return dw.file.Close()
}
