package core

import "github.com/huangsam/housescope/schema"

func record(address, listDate, price, area, year string) schema.RawRecord {
	return schema.RawRecord{
		schema.FieldAddress:        address,
		schema.FieldListDate:       listDate,
		schema.FieldPrice:          price,
		schema.FieldDaysOnMarket:   "10",
		schema.FieldTotalFloorArea: area,
		schema.FieldYearBuilt:      year,
		schema.FieldAge:            "40",
		schema.FieldLotSize:        "500",
	}
}

// sampleRecords spans every period, the listing cutoff and a few malformed values.
func sampleRecords() []schema.RawRecord {
	return []schema.RawRecord{
		record("123 Main St", "2020-05-01", "300000", "120", "1960"),
		record("45 Oak Ave", "2018-06-01", "500000", "150", "1975"),
		record("9 Pine Rd", "2021-02-03", "1500000", "210", "1999"),
		record("1 Old Mill Ln", "2022-07-15", "800000", "95", "1925"),
		record("88 New St", "2023-03-03", "950000", "180", "2010"),
		record("Lot 7", "2021-09-09", "420000", "", "1980"),
		record("Unknown Year Rd", "2021-09-09", "420000", "100", "n/a"),
		record("Edge Of Period", "2020-01-01", "600000", "130", "2000"),
	}
}
