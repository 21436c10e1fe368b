package ioformat

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/san-kum/dynsim/internal/nbody"
	"github.com/san-kum/dynsim/internal/vecmath"
)

// ReadTrajectory parses a trajectory CSV written by TrajectoryWriter
// back into one Snapshot per distinct sampled time, in file order.
// Malformed or short rows are dropped, matching the permissive-parse
// convention the rest of this package follows.
func ReadTrajectory(path string) ([]nbody.Snapshot[nbody.System], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseTrajectory(file)
}

func parseTrajectory(r io.Reader) ([]nbody.Snapshot[nbody.System], error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}
	records = records[1:]

	const rowFieldCount = 8 // time,pos_x,pos_y,pos_z,vel_x,vel_y,vel_z,mass

	var snapshots []nbody.Snapshot[nbody.System]
	var currentTime float64
	var currentSystem nbody.System
	haveCurrent := false

	flush := func() {
		if haveCurrent {
			snapshots = append(snapshots, nbody.Snapshot[nbody.System]{Time: currentTime, Data: currentSystem})
		}
	}

	for _, row := range records {
		if len(row) < rowFieldCount {
			continue
		}
		values, ok := parseFloats(row[:rowFieldCount])
		if !ok {
			continue
		}

		t := values[0]
		if !haveCurrent || t != currentTime {
			flush()
			currentTime = t
			currentSystem = nbody.System{}
			haveCurrent = true
		}

		currentSystem.Positions = append(currentSystem.Positions, vecmath.Vector3D{X: values[1], Y: values[2], Z: values[3]})
		currentSystem.Velocities = append(currentSystem.Velocities, vecmath.Vector3D{X: values[4], Y: values[5], Z: values[6]})
		currentSystem.Masses = append(currentSystem.Masses, values[7])
	}
	flush()

	return snapshots, nil
}
