package ioformat

import (
	"encoding/csv"
	"os"
)

// FileStatus is the non-GUI rendering of the original tool's file-check
// icon states: NotFound/Checked/Corrupted carry over directly, Loading
// has no counterpart here since validation is synchronous rather than
// an animated background check.
type FileStatus int

const (
	FileNotFound FileStatus = iota
	FileChecked
	FileCorrupted
)

func (s FileStatus) String() string {
	switch s {
	case FileNotFound:
		return "not found"
	case FileChecked:
		return "checked"
	case FileCorrupted:
		return "corrupted"
	default:
		return "unknown"
	}
}

// ValidateTrajectoryFile reports whether path exists and, if it does,
// whether every row parses against the trajectory schema (header plus
// systemCSVFieldCount+1 time-prefixed fields per row).
func ValidateTrajectoryFile(path string) FileStatus {
	file, err := os.Open(path)
	if err != nil {
		return FileNotFound
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return FileCorrupted
	}
	if len(records) == 0 {
		return FileCorrupted
	}

	for _, row := range records[1:] {
		if len(row) != len(trajectoryHeader) {
			return FileCorrupted
		}
		if _, ok := parseFloats(row); !ok {
			return FileCorrupted
		}
	}

	return FileChecked
}
