package schema

// Mark is a point mark drawn for one record of the filtered dataset.
type Mark struct {
	ID     string  `json:"id"`
	Index  int     `json:"index"` // Position of the record in the filtered dataset
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Fill   string  `json:"fill"`
	Hidden bool    `json:"hidden"` // Set when a coordinate is not finite
	Title  string  `json:"title"`  // Plain-text detail lines joined by newlines
}

// Tick is a single axis tick.
type Tick struct {
	Value  float64 `json:"value"`
	Offset float64 `json:"offset"` // Pixel position along the axis
	Label  string  `json:"label"`
}

// Axis is an axis drawn from a scale.
type Axis struct {
	Orientation Orientation `json:"orientation"`
	OffsetX     float64     `json:"offset_x"` // Translation of the axis group
	OffsetY     float64     `json:"offset_y"`
	RangeStart  float64     `json:"range_start"`
	RangeEnd    float64     `json:"range_end"`
	Ticks       []Tick      `json:"ticks"`
}

// Label is a text label positioned in plot coordinates.
type Label struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"` // Degrees, applied before positioning
}
