package score

import (
	"fmt"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"

	highConfidencePoints   = 21
	mediumConfidencePoints = 14
	highConfidenceMaxSlope = 0.01
)

// DefaultHorizons are the future day-counts projected when the caller does
// not ask for specific ones.
var DefaultHorizons = []int{30, 60, 90}

type ForecastPoint struct {
	Days  int             `json:"days"`
	Score float64         `json:"score"`
	Band  schema.RiskBand `json:"band"`
}

// Forecast projects the recent risk trend onto future horizons.
type Forecast struct {
	AsOf         string          `json:"as_of"`
	CurrentScore float64         `json:"current_score"`
	CurrentBand  schema.RiskBand `json:"current_band"`
	SlopePerDay  float64         `json:"slope_per_day"`
	Confidence   string          `json:"confidence"`
	Horizons     []ForecastPoint `json:"horizons"`
	Explanation  string          `json:"explanation"`
}

func forecastConfidence(points int, slope float64) string {
	abs := slope
	if abs < 0 {
		abs = -abs
	}
	switch {
	case points >= highConfidencePoints && abs < highConfidenceMaxSlope:
		return ConfidenceHigh
	case points >= mediumConfidencePoints:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ComputeForecast fits a linear trend over the scored records (sorted by date
// ascending, nil scores skipped) and projects it onto the horizons. It
// returns nil when fewer than two usable points exist: the forecast is
// unavailable, never zero-filled.
func ComputeForecast(records []schema.RiskRecord, horizons []int) *Forecast {
	if len(horizons) == 0 {
		horizons = DefaultHorizons
	}

	series := make([]SeriesPoint, 0, len(records))
	for _, r := range records {
		if r.Risk == nil {
			continue
		}
		series = append(series, SeriesPoint{Date: r.AsOfDate, Value: *r.Risk})
	}

	slope := OLSSlope(series)
	if slope == nil {
		return nil
	}

	latest := series[len(series)-1]
	current := Clamp(latest.Value, 0, 1)

	projected := make([]ForecastPoint, 0, len(horizons))
	for _, days := range horizons {
		s := Clamp(current+*slope*float64(days), 0, 1)
		projected = append(projected, ForecastPoint{
			Days:  days,
			Score: s,
			Band:  BandForScore(&s),
		})
	}

	direction := "flat"
	if *slope > 0 {
		direction = "increasing"
	} else if *slope < 0 {
		direction = "decreasing"
	}

	return &Forecast{
		AsOf:         latest.Date,
		CurrentScore: current,
		CurrentBand:  BandForScore(&current),
		SlopePerDay:  *slope,
		Confidence:   forecastConfidence(len(series), *slope),
		Horizons:     projected,
		Explanation:  fmt.Sprintf("Projection assumes your last %d days of risk remain %s.", len(series), direction),
	}
}
