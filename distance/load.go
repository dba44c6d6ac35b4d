package distance

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/acotour/matrix"
)

// matrixFile is the on-disk JSON layout of a precomputed matrix.
// A null entry marks an unreachable pair.
type matrixFile struct {
	Labels    []string     `json:"labels,omitempty"`
	Distances [][]*float64 `json:"distances"`
}

// LoadLocations decodes a JSON array of {"name","lat","lng"} objects.
func LoadLocations(r io.Reader) ([]Location, error) {
	var locs []Location
	if err := json.NewDecoder(r).Decode(&locs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	if len(locs) == 0 {
		return nil, ErrNoLocations
	}
	for i, l := range locs {
		if err := checkCoordinate(l); err != nil {
			return nil, fmt.Errorf("location %d (%q): %w", i, l.Name, err)
		}
	}
	return locs, nil
}

// LoadJSON decodes a {"labels": [...], "distances": [[...]]} document into a
// sanitized Table. Labels are optional; when present there must be one per row.
// Negative distances are rejected with ErrBadInput.
func LoadJSON(r io.Reader) (Table, error) {
	var f matrixFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrBadInput, err)
	}

	rows := make([][]float64, len(f.Distances))
	for i, in := range f.Distances {
		rows[i] = make([]float64, len(in))
		for j, v := range in {
			if v == nil {
				rows[i][j] = math.NaN() // missing; Sanitize maps it to Unreachable
				continue
			}
			rows[i][j] = *v
		}
	}

	return build(rows, f.Labels)
}

// LoadCSV reads a square matrix from CSV. If the first record contains any
// non-numeric field it is taken as a header of labels. Empty cells mark
// unreachable pairs; negative cells are rejected with ErrBadInput.
func LoadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("%w: empty csv", ErrBadInput)
	}

	var labels []string
	if !numericRecord(records[0]) {
		labels = records[0]
		records = records[1:]
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" {
				rows[i][j] = math.NaN() // missing; Sanitize maps it to Unreachable
				continue
			}
			if rows[i][j], err = strconv.ParseFloat(field, 64); err != nil {
				return Table{}, fmt.Errorf("%w: row %d col %d: %w", ErrBadInput, i, j, err)
			}
		}
	}

	return build(rows, labels)
}

// LoadFile dispatches on the file extension (.json or .csv).
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(f)
	case ".csv":
		return LoadCSV(f)
	default:
		return Table{}, fmt.Errorf("%w: unsupported extension %q", ErrBadInput, filepath.Ext(path))
	}
}

func build(rows [][]float64, labels []string) (Table, error) {
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("%w: no rows", ErrBadInput)
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	if d.Rows() != d.Cols() {
		return Table{}, fmt.Errorf("%w: %dx%d matrix is not square", ErrBadInput, d.Rows(), d.Cols())
	}
	if labels != nil && len(labels) != d.Rows() {
		return Table{}, fmt.Errorf("%w: %d labels for %d rows", ErrBadInput, len(labels), d.Rows())
	}
	replaced := Sanitize(d)
	if err = CheckNonNegative(d); err != nil {
		return Table{}, err
	}

	return Table{Labels: labels, Dist: d, Unreachable: replaced}, nil
}

func numericRecord(rec []string) bool {
	for _, field := range rec {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return false
		}
	}
	return true
}
