package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads a roster CSV and returns normalized players. The header
// must contain exactly the four expected columns; anything else is a
// column-mismatch error.
func ParseCSV(r io.Reader) ([]Player, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumns)
	}

	header := rows[0]
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{}
		for i, col := range header {
			if i < len(row) {
				rec[strings.TrimSpace(col)] = row[i]
			}
		}
		records = append(records, rec)
	}
	return Normalize(records)
}

func checkHeader(header []string) error {
	have := make(map[string]bool, len(header))
	for _, col := range header {
		have[strings.TrimSpace(col)] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	if len(have) != len(RequiredColumns) {
		return fmt.Errorf("%w: header must contain exactly %s", ErrMissingColumns, strings.Join(RequiredColumns, ", "))
	}
	return nil
}
