// Package dataset loads the housing dataset from CSV, XLSX or Parquet files.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrMissingColumn is returned when the header lacks a dataset column.
	ErrMissingColumn = errors.New("missing column")

	// ErrUnsupportedFormat is returned for files that are not CSV, XLSX or Parquet.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// loadKey is the singleflight key shared by every caller of one Source.
const loadKey = "load"

// Source loads a dataset file once and shares the records with every caller.
// Concurrent callers of Load wait on the same in-flight read.
type Source struct {
	path   string
	format schema.DataFormat
	sheet  string

	group singleflight.Group

	mu      sync.Mutex
	loaded  bool
	records []schema.RawRecord
	err     error

	// read is swapped in tests to observe how often the file is read.
	read func(path string, format schema.DataFormat, sheet string) ([]schema.RawRecord, error)
}

var _ contract.DataSource = &Source{}

// NewSource creates a source for path. AutoFormat picks the format from the extension.
func NewSource(path string, format schema.DataFormat, sheet string) (*Source, error) {
	if format == schema.AutoFormat || format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	if _, ok := schema.ValidDataFormats[format]; !ok || format == schema.AutoFormat {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return &Source{path: path, format: format, sheet: sheet, read: ReadFile}, nil
}

// Path returns the dataset path.
func (s *Source) Path() string {
	return s.path
}

// Format returns the resolved dataset format.
func (s *Source) Format() schema.DataFormat {
	return s.format
}

// Load returns the dataset records. The file is read at most once; a failed
// read is remembered and returned to later callers as well.
func (s *Source) Load(ctx context.Context) ([]schema.RawRecord, error) {
	s.mu.Lock()
	if s.loaded {
		records, err := s.records, s.err
		s.mu.Unlock()
		return records, err
	}
	s.mu.Unlock()

	ch := s.group.DoChan(loadKey, func() (any, error) {
		s.mu.Lock()
		if s.loaded {
			defer s.mu.Unlock()
			return s.records, s.err
		}
		s.mu.Unlock()

		records, err := s.read(s.path, s.format, s.sheet)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.records, s.err, s.loaded = records, err, true
		return records, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]schema.RawRecord), nil
	}
}

// DetectFormat picks the dataset format from the file extension.
func DetectFormat(path string) (schema.DataFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return schema.CSVFormat, nil
	case ".xlsx", ".xlsm":
		return schema.XLSXFormat, nil
	case ".parquet", ".pq":
		return schema.ParquetFormat, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// ReadFile reads every record of a dataset file in the given format.
func ReadFile(path string, format schema.DataFormat, sheet string) ([]schema.RawRecord, error) {
	switch format {
	case schema.CSVFormat:
		return readCSV(path)
	case schema.XLSXFormat:
		return readXLSX(path, sheet)
	case schema.ParquetFormat:
		return readParquet(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// recordsFromRows maps data rows onto the header row.
// Short rows leave trailing fields empty and extra cells are ignored.
func recordsFromRows(rows [][]string) ([]schema.RawRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file, expected a header row", ErrMissingColumn)
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	records := make([]schema.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		record := make(schema.RawRecord, len(schema.Fields))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// checkHeader reports the dataset columns missing from header.
func checkHeader(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}
	var missing []string
	for _, field := range schema.Fields {
		if _, ok := present[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
