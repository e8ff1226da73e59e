package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"courseboard/internal/schema"
)

// SkippedRow records one row dropped for a required-field violation.
type SkippedRow struct {
	Line   int    `json:"line"`
	Column string `json:"column"`
}

// CategoryCount is one entry of the unmapped-category report.
type CategoryCount struct {
	Category string `json:"category"` // original source value, may be ""
	Count    int    `json:"count"`
}

// ParseResult is everything the pipeline needs from one source file.
type ParseResult struct {
	Rows                []schema.CanonicalRow
	Skipped             []SkippedRow
	UnrecognizedColumns []string
	Unmapped            map[string]int
}

// UnmappedReport returns the unmapped-category tally ordered by count
// descending, then category ascending, for deterministic summaries.
func (r *ParseResult) UnmappedReport() []CategoryCount {
	report := make([]CategoryCount, 0, len(r.Unmapped))
	for cat, n := range r.Unmapped {
		report = append(report, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(report, func(i, j int) bool {
		if report[i].Count != report[j].Count {
			return report[i].Count > report[j].Count
		}
		return report[i].Category < report[j].Category
	})
	return report
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile parses a UTF-8 CSV export (byte-order-mark tolerated) into
// canonical rows. The first row must be a header row; column order is
// irrelevant and unknown columns are ignored. categories is the store's
// current category set for fallback mapping.
//
// Fatal outcomes are a missing/unreadable file, a missing header row, a
// malformed CSV body, or *SchemaMismatchError. Required-field violations
// only skip their row.
func ReadFile(path string, aliases schema.AliasTable, categories []string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1 // real exports are ragged; short rows read as empty cells

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: file has no header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	cols, err := ResolveHeaders(headers, aliases)
	if err != nil {
		return nil, err
	}

	rn := NewNormalizer(cols, categories)
	result := &ParseResult{UnrecognizedColumns: cols.Unrecognized}

	line := 1 // header
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		row, err := rn.Row(line, record)
		if err != nil {
			var empty *RequiredFieldEmptyError
			if errors.As(err, &empty) {
				result.Skipped = append(result.Skipped, SkippedRow{Line: empty.Line, Column: empty.Column})
				continue
			}
			return nil, err
		}
		result.Rows = append(result.Rows, row)
	}

	result.Unmapped = rn.Unmapped
	return result, nil
}
