package schema

import "time"

// Custom string types for type safety.
type (
	// Period is a fixed year-built band selectable from the period buttons.
	Period string

	// OutputMode represents the format of the rendered chart.
	OutputMode string

	// DataFormat represents the file format of the dataset.
	DataFormat string

	// Orientation represents where an axis is drawn relative to the plot.
	Orientation string
)

// All periods supported.
const (
	NoPeriod   Period = "none" // default
	Period1900 Period = "1900"
	Period1950 Period = "1950"
	Period2000 Period = "2000"
)

// All output modes supported.
const (
	SVGOut  OutputMode = "svg" // default
	HTMLOut OutputMode = "html"
)

// All dataset formats supported.
const (
	AutoFormat    DataFormat = "auto" // default
	CSVFormat     DataFormat = "csv"
	XLSXFormat    DataFormat = "xlsx"
	ParquetFormat DataFormat = "parquet"
)

// All axis orientations supported.
const (
	BottomAxis Orientation = "bottom"
	LeftAxis   Orientation = "left"
)

// Chart layout in pixels.
const (
	TotalWidth   = 800
	TotalHeight  = 500
	TopMargin    = 20
	RightMargin  = 20
	BottomMargin = 50
	LeftMargin   = 80

	PlotWidth  = TotalWidth - LeftMargin - RightMargin
	PlotHeight = TotalHeight - TopMargin - BottomMargin

	PointRadius = 5
	PointFill   = "blue"
)

// Axis labels.
const (
	XAxisLabel = "Total Floor Area (square meters)"
	YAxisLabel = "Price (CAD)"
)

// ChartContainer is the container that holds the scatterplot canvas.
const ChartContainer = "scatterplot"

// ListDateCutoff is the exclusive lower bound on listing dates.
// Only listings strictly after it are shown, whatever the selected period.
var ListDateCutoff = time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)

// AllPeriods returns the selectable periods in button order.
var AllPeriods = []Period{Period1900, Period1950, Period2000}

// ValidPeriods lists all valid periods, including NoPeriod.
var ValidPeriods = map[Period]struct{}{
	NoPeriod:   {},
	Period1900: {},
	Period1950: {},
	Period2000: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	SVGOut:  {},
	HTMLOut: {},
}

// ValidDataFormats lists all valid dataset formats.
var ValidDataFormats = map[DataFormat]struct{}{
	AutoFormat:    {},
	CSVFormat:     {},
	XLSXFormat:    {},
	ParquetFormat: {},
}
