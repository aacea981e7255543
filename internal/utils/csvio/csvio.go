// Package csvio implements the CSV import/export boundary: static-header
// exports with one row per record, and header-driven imports that match
// column names case-insensitively. Multi-value fields (member groups, sermon
// tags) are semicolon-delimited within a single cell.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/imani-cms/imani_backend/internal/apperrors"
)

// MultiValueSeparator delimits multi-value fields inside one CSV cell.
const MultiValueSeparator = ";"

// Export writes a static header row followed by one encoded row per record.
func Export[T any](w io.Writer, header []string, records []T, encode func(T) []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, record := range records {
		row := encode(record)
		if len(row) != len(header) {
			return fmt.Errorf("encoded row has %d fields, header has %d", len(row), len(header))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Row is one imported record keyed by lower-cased header name.
type Row map[string]string

// Get returns the value for a column, matched case-insensitively.
func (r Row) Get(column string) string {
	return r[strings.ToLower(column)]
}

// Import reads a CSV with a first header row and returns one Row per data
// line. Header matching is case-insensitive. Every column in required must
// be present or the import fails with ErrValidation.
func Import(reader io.Reader, required []string) ([]Row, error) {
	cr := csv.NewReader(reader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing csv header row", apperrors.ErrValidation)
	}
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		columns[i] = name
		seen[name] = true
	}
	for _, req := range required {
		if !seen[strings.ToLower(req)] {
			return nil, fmt.Errorf("%w: csv is missing required column %q", apperrors.ErrValidation, req)
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: malformed csv row: %v", apperrors.ErrValidation, err)
		}
		row := make(Row, len(columns))
		for i, value := range record {
			if i < len(columns) {
				row[columns[i]] = value
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// JoinMulti encodes a multi-value field into one cell.
func JoinMulti(values []string) string {
	return strings.Join(values, MultiValueSeparator)
}

// SplitMulti decodes a multi-value cell, dropping empty entries.
func SplitMulti(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, MultiValueSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
