package schema

// DataQualityBreakdown holds the weighted sub-scores of the quality score.
type DataQualityBreakdown struct {
	Vitals   int `json:"vitals"`
	Symptoms int `json:"symptoms"`
	Meds     int `json:"meds"`
}

// DataQualityDays counts distinct logging days per category inside the
// window.
type DataQualityDays struct {
	Vitals   int `json:"vitals"`
	Symptoms int `json:"symptoms"`
	Meds     int `json:"meds"`
}

// DataQualityResult measures logging completeness over a window. It is a
// derived read, not persisted.
type DataQualityResult struct {
	Score      int                  `json:"score"`
	Breakdown  DataQualityBreakdown `json:"breakdown"`
	Days       DataQualityDays      `json:"days"`
	WindowDays int                  `json:"window_days"`
	Summary    string               `json:"summary"`
}
