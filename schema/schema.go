// Package schema has models, constants and layout settings for all parts of housescope.
package schema

// Dataset field names. The column set of the dataset is fixed.
const (
	FieldAddress        = "Address"
	FieldListDate       = "ListDate"
	FieldPrice          = "Price"
	FieldDaysOnMarket   = "DaysOnMarket"
	FieldTotalFloorArea = "TotalFloorArea"
	FieldYearBuilt      = "YearBuilt"
	FieldAge            = "Age"
	FieldLotSize        = "LotSize"
)

// Fields lists every dataset column in display order.
var Fields = []string{
	FieldAddress,
	FieldListDate,
	FieldPrice,
	FieldDaysOnMarket,
	FieldTotalFloorArea,
	FieldYearBuilt,
	FieldAge,
	FieldLotSize,
}

// RawRecord is one housing-sale row as loaded from the dataset source.
// Every value is the untouched string found in the source.
type RawRecord map[string]string

// House is a normalized housing-sale record.
// YearBuilt, Price and TotalFloorArea hold integer values, or NaN when the
// source value was not numeric. The remaining fields are display strings.
type House struct {
	Address        string  `json:"address"`
	ListDate       string  `json:"list_date"`
	Price          float64 `json:"price"`
	DaysOnMarket   string  `json:"days_on_market"`
	TotalFloorArea float64 `json:"total_floor_area"`
	YearBuilt      float64 `json:"year_built"`
	Age            string  `json:"age"`
	LotSize        string  `json:"lot_size"`
}
