package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/huangsam/housescope/schema"
)

// readCSV reads a comma-separated file with a header row.
func readCSV(path string) ([]schema.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return recordsFromRows(rows)
}
