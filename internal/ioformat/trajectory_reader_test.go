package ioformat

import (
	"strings"
	"testing"
)

func TestParseTrajectory_GroupsRowsByDistinctTime(t *testing.T) {
	csv := `time,pos_x,pos_y,pos_z,vel_x,vel_y,vel_z,mass
0,1,0,0,0,1,0,1
0,-1,0,0,0,-1,0,1
1,1.1,0,0,0,1,0,1
1,-1.1,0,0,0,-1,0,1
`
	snapshots, err := parseTrajectory(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parseTrajectory() error = %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("len(snapshots) = %d, want 2", len(snapshots))
	}
	if snapshots[0].Time != 0 || snapshots[1].Time != 1 {
		t.Errorf("snapshot times = %v, %v, want 0, 1", snapshots[0].Time, snapshots[1].Time)
	}
	if snapshots[0].Data.Count() != 2 || snapshots[1].Data.Count() != 2 {
		t.Errorf("snapshot particle counts = %d, %d, want 2, 2", snapshots[0].Data.Count(), snapshots[1].Data.Count())
	}
}

func TestParseTrajectory_DropsMalformedRows(t *testing.T) {
	csv := `time,pos_x,pos_y,pos_z,vel_x,vel_y,vel_z,mass
0,1,0,0,0,1,0,1
not,a,valid,row
0,-1,0,0,0,-1,0,1
`
	snapshots, err := parseTrajectory(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parseTrajectory() error = %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("len(snapshots) = %d, want 1", len(snapshots))
	}
	if snapshots[0].Data.Count() != 2 {
		t.Errorf("Count() = %d, want 2 (malformed row dropped)", snapshots[0].Data.Count())
	}
}

func TestParseTrajectory_HeaderOnlyYieldsNoSnapshots(t *testing.T) {
	csv := "time,pos_x,pos_y,pos_z,vel_x,vel_y,vel_z,mass\n"
	snapshots, err := parseTrajectory(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parseTrajectory() error = %v", err)
	}
	if len(snapshots) != 0 {
		t.Errorf("len(snapshots) = %d, want 0", len(snapshots))
	}
}
