package schema

// FilterParams are the parameters of a single filter pass.
// StartYear is inclusive and EndYear is exclusive.
type FilterParams struct {
	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`
	MaxPrice  int `json:"max_price"`
}

// SelectionState is the UI selection owned by the interaction controller.
type SelectionState struct {
	Period   Period `json:"period"`
	MaxPrice int    `json:"max_price"`
}

// HasPeriod reports whether a period button is currently selected.
func (s SelectionState) HasPeriod() bool {
	return s.Period != NoPeriod && s.Period != ""
}

// FilterParams derives the filter parameters for the current selection.
// The second result is false when no period is selected.
func (s SelectionState) FilterParams() (FilterParams, bool) {
	start, end, ok := s.Period.Bounds()
	if !ok {
		return FilterParams{}, false
	}
	return FilterParams{StartYear: start, EndYear: end, MaxPrice: s.MaxPrice}, true
}
