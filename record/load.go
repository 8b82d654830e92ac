package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingColumn indicates the CSV header lacks a required column.
var ErrMissingColumn = errors.New("record: missing column")

// Column names of the input CSV.
const (
	ColJurisdiction      = "jurisdiction"
	ColYear              = "year"
	ColPrisonerCount     = "prisoner_count"
	ColStatePopulation   = "state_population"
	ColViolentCrimeTotal = "violent_crime_total"
)

var requiredColumns = []string{
	ColJurisdiction, ColYear, ColPrisonerCount, ColStatePopulation, ColViolentCrimeTotal,
}

// Rejected is a row that could not be cleaned.
type Rejected struct {
	// Line is the 1-based CSV line of the row, header included.
	Line   int
	Raw    Raw
	Reason error
}

// Dataset is the outcome of a Load: valid records in input order plus rejects.
type Dataset struct {
	Records  []Record
	Rejected []Rejected
}

// Source supplies an ordered sequence of validated records.
type Source interface {
	Load() (*Dataset, error)
}

// FileSource loads records from a CSV file on disk.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s FileSource) Load() (*Dataset, error) { return LoadFile(s.Path) }

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("record: load %s: %w", path, err)
	}

	return ds, nil
}

// Load reads a CSV stream with a header row. Rows that fail Clean are
// returned in Dataset.Rejected; only structural CSV problems (unreadable
// stream, missing header column) are returned as errors.
func Load(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return &Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("record: read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("record: line %d: %w", line, err)
		}

		raw := Raw{
			Jurisdiction:      cell(row, idx[ColJurisdiction]),
			Year:              cell(row, idx[ColYear]),
			PrisonerCount:     cell(row, idx[ColPrisonerCount]),
			StatePopulation:   cell(row, idx[ColStatePopulation]),
			ViolentCrimeTotal: cell(row, idx[ColViolentCrimeTotal]),
		}
		rec, err := Clean(raw)
		if err != nil {
			ds.Rejected = append(ds.Rejected, Rejected{Line: line, Raw: raw, Reason: err})
			continue
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		// A UTF-8 BOM sneaks into the first header cell of spreadsheet exports.
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	return idx, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return row[i]
}
