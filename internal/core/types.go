package core

import (
	"strings"
	"time"
)

// FieldKind describes how a CSV column is normalized into a record field.
type FieldKind int

const (
	FieldText FieldKind = iota // trimmed, blank becomes null
	FieldList                  // newline-separated entries
	FieldKey                   // required row key, blank skips the row
	FieldIntKey                // required integer row key
)

// FieldSpec defines a single CSV column of a dataset.
type FieldSpec struct {
	Name string    // Column header name (matched case-insensitively)
	Kind FieldKind // Normalization applied to the cell
}

// Key reports whether the column identifies the row.
func (f FieldSpec) Key() bool {
	return f.Kind == FieldKey || f.Kind == FieldIntKey
}

// DatasetInfo contains descriptive information about a dataset.
type DatasetInfo struct {
	Key     string   // Unique identifier: "registries"
	Label   string   // Display name: "Domain registries"
	Input   string   // Default input file name: "registries.csv"
	Output  string   // Default output file name: "registries.json"
	Order   int      // Run order; lower runs first
	Columns []string // Header column names, derived from FieldSpecs
}

// HeaderIndex maps column names (lowercase) to their position in the CSV row.
type HeaderIndex map[string]int

// Row is one CSV data row together with the header it was read under.
type Row struct {
	Line  int      // 1-indexed line number where the record starts
	Cells []string // Raw cells in file order
	idx   HeaderIndex
}

// NewRow binds cells to a header index.
func NewRow(line int, cells []string, idx HeaderIndex) Row {
	return Row{Line: line, Cells: cells, idx: idx}
}

// Get returns the raw cell for a column.
// ok is false when the column is not in the header or the row is too short.
func (r Row) Get(name string) (value string, ok bool) {
	pos, found := r.idx[strings.ToLower(name)]
	if !found || pos >= len(r.Cells) {
		return "", false
	}
	return r.Cells[pos], true
}

// Cell returns the raw cell for a column, or "" when it is missing.
func (r Row) Cell(name string) string {
	v, _ := r.Get(name)
	return v
}

// BuildRecordFunc maps one CSV row to a dataset record.
//
// Returning ErrBlankKey skips the row silently. Any other error skips
// the row with a diagnostic (or fails the run in strict mode).
type BuildRecordFunc func(row Row) (any, error)

// DatasetDefinition contains everything needed to convert one dataset.
type DatasetDefinition struct {
	Info        DatasetInfo
	FieldSpecs  []FieldSpec
	BuildRecord BuildRecordFunc
}

// KeyColumn returns the name of the row key column, or "" if none is declared.
func (d DatasetDefinition) KeyColumn() string {
	for _, spec := range d.FieldSpecs {
		if spec.Key() {
			return spec.Name
		}
	}
	return ""
}

// SkippedRow contains information about a row that was excluded with a diagnostic.
type SkippedRow struct {
	LineNumber int
	Reason     string
	Data       []string
}

// ConversionResult contains the final result of converting one dataset.
type ConversionResult struct {
	RunID       string
	DatasetKey  string
	InputPath   string
	OutputPath  string
	TotalRows   int
	Written     int
	Skipped     int // Includes rows skipped silently for a blank key
	SkippedRows []SkippedRow
	BytesRead   int64
	Duration    time.Duration
	Err         error // Non-nil if the dataset was aborted
}

// Succeeded reports whether the output document was written.
func (r ConversionResult) Succeeded() bool {
	return r.Err == nil
}
