package mos

import (
	"bytes"
	"encoding/csv"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/mos_mapping.csv
var defaultTableCSV []byte

// Expected column order in the reference CSV.
const (
	colCode = iota
	colBranch
	colTitle
	colCivilianEquivalent
	colSkills
	colKeywords
	columnCount
)

// Record is a single reference entry mapping an occupational code to
// civilian-equivalent titles, skills, and search keywords.
type Record struct {
	Code           string   `json:"code"`
	Branch         string   `json:"branch"`
	Title          string   `json:"title"`
	CivilianTitles []string `json:"civilian_titles"`
	Skills         []string `json:"skills"`
	Keywords       []string `json:"keywords"`
}

// Table is the immutable occupational code reference table. It is loaded
// once at process start and safe to share across concurrent renders.
type Table struct {
	records []Record
	byCode  map[string][]int // lowercase code -> record indices in table order
}

// DefaultTable loads the reference table embedded in the binary.
func DefaultTable() (*Table, error) {
	return Load(bytes.NewReader(defaultTableCSV), "embedded mos_mapping.csv")
}

// LoadFile loads a reference table from a CSV file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &TableLoadError{Source: path, Message: "cannot open file", Cause: err}
	}
	defer func() { _ = f.Close() }()
	return Load(f, path)
}

// Load parses a reference table from CSV content. The expected columns are
// MOS_CODE, BRANCH, TITLE, CIVILIAN_EQUIVALENT, SKILLS, KEYWORDS, where
// CIVILIAN_EQUIVALENT entries are pipe-separated and SKILLS/KEYWORDS are
// comma-separated. Rows missing a code, branch, or title are skipped with a
// warning rather than failing the whole load.
func Load(r io.Reader, source string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row width checked per-row so bad rows can be skipped
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &TableLoadError{Source: source, Message: "malformed CSV", Cause: err}
	}
	if len(rows) == 0 {
		return nil, &TableLoadError{Source: source, Message: "empty table"}
	}

	table := &Table{byCode: make(map[string][]int)}

	// First row is the header.
	for i, row := range rows[1:] {
		lineNum := i + 2
		if len(row) < columnCount {
			fmt.Fprintf(os.Stderr, "Warning: skipping row %d in %s: expected %d columns, got %d\n",
				lineNum, source, columnCount, len(row))
			continue
		}

		record := Record{
			Code:           strings.ToUpper(strings.TrimSpace(row[colCode])),
			Branch:         strings.TrimSpace(row[colBranch]),
			Title:          strings.TrimSpace(row[colTitle]),
			CivilianTitles: splitList(row[colCivilianEquivalent], "|"),
			Skills:         splitList(row[colSkills], ","),
			Keywords:       splitList(row[colKeywords], ","),
		}

		if record.Code == "" || record.Branch == "" || record.Title == "" {
			fmt.Fprintf(os.Stderr, "Warning: skipping row %d in %s: missing required column\n", lineNum, source)
			continue
		}

		idx := len(table.records)
		table.records = append(table.records, record)
		key := strings.ToLower(record.Code)
		table.byCode[key] = append(table.byCode[key], idx)
	}

	if len(table.records) == 0 {
		return nil, &TableLoadError{Source: source, Message: "no valid rows"}
	}

	return table, nil
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns all records in table order. The returned slice is a copy.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

func splitList(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
