package score_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/score"
	"github.com/cardiometrix/cardiometrix-api/utils"
)

func riskSeries(start string, days int, base, step float64) []schema.RiskRecord {
	records := make([]schema.RiskRecord, 0, days)
	for i := 0; i < days; i++ {
		records = append(records, schema.RiskRecord{
			UserID:   "u1",
			AsOfDate: utils.AddDays(start, i),
			Risk:     score.Float64(base + step*float64(i)),
			Band:     schema.BandAmber,
		})
	}
	return records
}

func TestComputeForecastUnavailable(t *testing.T) {
	assert.Nil(t, score.ComputeForecast(nil, nil), "no records: forecast unavailable")

	one := riskSeries("2026-02-01", 1, 0.4, 0)
	assert.Nil(t, score.ComputeForecast(one, nil), "one point: forecast unavailable")

	// records without scores do not count as usable points
	unknowns := []schema.RiskRecord{
		{AsOfDate: "2026-02-01", Band: schema.BandUnknown},
		{AsOfDate: "2026-02-02", Band: schema.BandUnknown},
	}
	assert.Nil(t, score.ComputeForecast(unknowns, nil))
}

func TestComputeForecastHighConfidence(t *testing.T) {
	records := riskSeries("2026-02-01", 21, 0.40, 0.005)

	forecast := score.ComputeForecast(records, nil)
	assert.NotNil(t, forecast)
	assert.Equal(t, score.ConfidenceHigh, forecast.Confidence,
		"21 points with |slope| < 0.01 is high confidence")
	assert.InDelta(t, 0.005, forecast.SlopePerDay, 1e-9)
	assert.Equal(t, "2026-02-21", forecast.AsOf)
	assert.Equal(t, schema.BandAmber, forecast.CurrentBand)
}

func TestComputeForecastConfidenceTiers(t *testing.T) {
	medium := score.ComputeForecast(riskSeries("2026-02-01", 14, 0.2, 0.02), nil)
	assert.Equal(t, score.ConfidenceMedium, medium.Confidence,
		"a steep slope caps confidence at medium even with many points")

	low := score.ComputeForecast(riskSeries("2026-02-01", 5, 0.2, 0.001), nil)
	assert.Equal(t, score.ConfidenceLow, low.Confidence)
}

func TestComputeForecastHorizons(t *testing.T) {
	records := riskSeries("2026-02-01", 10, 0.30, 0.01)

	forecast := score.ComputeForecast(records, []int{30, 60, 90})
	assert.Len(t, forecast.Horizons, 3)

	current := forecast.CurrentScore
	for _, h := range forecast.Horizons {
		expected := score.Clamp(current+forecast.SlopePerDay*float64(h.Days), 0, 1)
		assert.InDelta(t, expected, h.Score, 1e-9, fmt.Sprintf("wrong projection for %d days", h.Days))
		assert.Equal(t, score.BandForScore(&h.Score), h.Band)
		assert.True(t, h.Score >= 0 && h.Score <= 1, "projections are clamped into [0,1]")
	}

	// far horizons of a rising series saturate at 1
	assert.Equal(t, 1.0, forecast.Horizons[2].Score)
	assert.Equal(t, schema.BandRed, forecast.Horizons[2].Band)
}

func TestComputeForecastExplanation(t *testing.T) {
	rising := score.ComputeForecast(riskSeries("2026-02-01", 5, 0.2, 0.01), nil)
	assert.Contains(t, rising.Explanation, "increasing")

	falling := score.ComputeForecast(riskSeries("2026-02-01", 5, 0.5, -0.01), nil)
	assert.Contains(t, falling.Explanation, "decreasing")
}
