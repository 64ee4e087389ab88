// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roster reads the trainee roster CSV and writes the two result
// tables: per-trainee statistics joined to the input roster, and the flat
// paper-content table.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Recognized roster columns. LastName and FirstName are required;
// ThesisMentor and Location are optional and degrade to empty fields.
const (
	colLastName     = "LastName"
	colFirstName    = "FirstName"
	colThesisMentor = "ThesisMentor"
	colLocation     = "Location"
)

// Row is one roster entry. Cells holds the original record unchanged so
// the stats export can reproduce the input columns next to the results.
type Row struct {
	LastName     string
	FirstName    string
	ThesisMentor string
	Location     string

	Cells []string
}

// Table is the parsed roster plus the original header.
type Table struct {
	Header []string
	Rows   []Row
}

// Read parses the roster file. Unrecognized columns are carried through to
// the export untouched; a missing LastName or FirstName column is an error
// because nothing can be searched without them.
func Read(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	return parse(csv.NewReader(f), path)
}

func parse(r *csv.Reader, name string) (Table, error) {
	header, err := r.Read()
	if err == io.EOF {
		return Table{}, fmt.Errorf("roster %s is empty", name)
	}
	if err != nil {
		return Table{}, fmt.Errorf("reading roster header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	lastIdx, ok := cols[colLastName]
	if !ok {
		return Table{}, fmt.Errorf("roster %s has no %s column", name, colLastName)
	}
	firstIdx, ok := cols[colFirstName]
	if !ok {
		return Table{}, fmt.Errorf("roster %s has no %s column", name, colFirstName)
	}
	mentorIdx, hasMentor := cols[colThesisMentor]
	locIdx, hasLoc := cols[colLocation]

	t := Table{Header: header}
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("reading roster line %d: %w", line, err)
		}

		row := Row{
			LastName:  rec[lastIdx],
			FirstName: rec[firstIdx],
			Cells:     rec,
		}
		if hasMentor {
			row.ThesisMentor = rec[mentorIdx]
		}
		if hasLoc {
			row.Location = rec[locIdx]
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
