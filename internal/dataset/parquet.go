package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/housescope/schema"
	"github.com/parquet-go/parquet-go"
)

// parquetBatchSize is the number of rows decoded per read.
const parquetBatchSize = 512

// HouseRow is the Parquet layout of a dataset row.
// Every column is an optional string, matching the CSV and Excel layouts.
type HouseRow struct {
	Address        string `parquet:"Address,optional,snappy"`
	ListDate       string `parquet:"ListDate,optional,snappy"`
	Price          string `parquet:"Price,optional,snappy"`
	DaysOnMarket   string `parquet:"DaysOnMarket,optional,snappy"`
	TotalFloorArea string `parquet:"TotalFloorArea,optional,snappy"`
	YearBuilt      string `parquet:"YearBuilt,optional,snappy"`
	Age            string `parquet:"Age,optional,snappy"`
	LotSize        string `parquet:"LotSize,optional,snappy"`
}

// Record converts the row into a raw record.
func (r HouseRow) Record() schema.RawRecord {
	return schema.RawRecord{
		schema.FieldAddress:        r.Address,
		schema.FieldListDate:       r.ListDate,
		schema.FieldPrice:          r.Price,
		schema.FieldDaysOnMarket:   r.DaysOnMarket,
		schema.FieldTotalFloorArea: r.TotalFloorArea,
		schema.FieldYearBuilt:      r.YearBuilt,
		schema.FieldAge:            r.Age,
		schema.FieldLotSize:        r.LotSize,
	}
}

// readParquet reads every row of a Parquet file.
func readParquet(path string) ([]schema.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Parquet file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat Parquet file: %w", err)
	}
	pf, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open Parquet file: %w", err)
	}
	if err := checkParquetColumns(pf.Schema()); err != nil {
		return nil, err
	}

	reader := parquet.NewGenericReader[HouseRow](file)
	defer func() { _ = reader.Close() }()

	records := make([]schema.RawRecord, 0, reader.NumRows())
	buf := make([]HouseRow, parquetBatchSize)
	for {
		n, err := reader.Read(buf)
		for _, row := range buf[:n] {
			records = append(records, row.Record())
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read Parquet rows: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return records, nil
}

// checkParquetColumns reports dataset columns missing from the file schema.
func checkParquetColumns(s *parquet.Schema) error {
	header := make([]string, 0, len(s.Fields()))
	for _, f := range s.Fields() {
		header = append(header, f.Name())
	}
	return checkHeader(header)
}
