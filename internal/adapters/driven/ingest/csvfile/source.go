package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/cboldwyn/dc-label/internal/core/domain"
	"github.com/cboldwyn/dc-label/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.TableSource = (*Source)(nil)

// Source loads raw tables from CSV files on the local filesystem.
type Source struct{}

// NewSource creates a new CSV table source.
func NewSource() *Source {
	return &Source{}
}

// LoadTable reads the CSV file at path. The first row is the header;
// every following row becomes a header-keyed string map. Rows shorter
// than the header leave the missing cells empty.
func (s *Source) LoadTable(ctx context.Context, path string) (domain.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Inventory exports sometimes carry ragged rows; length is
	// reconciled against the header below.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return domain.RawTable{}, err
	}

	if len(records) == 0 {
		return domain.RawTable{}, fmt.Errorf("%s: %w", path, domain.ErrEmptyTable)
	}

	columns := make([]string, len(records[0]))
	for i, name := range records[0] {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[i] = strings.TrimSpace(name)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	table := domain.RawTable{Columns: columns, Rows: rows}
	if table.Empty() {
		return domain.RawTable{}, fmt.Errorf("%s: %w", path, domain.ErrEmptyTable)
	}

	return table, nil
}
