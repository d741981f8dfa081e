package score_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/score"
)

func TestMean(t *testing.T) {
	assert.Nil(t, score.Mean(nil), "empty window must be nil, not zero")
	assert.Nil(t, score.Mean([]float64{}))

	m := score.Mean([]float64{120, 130, 140})
	assert.NotNil(t, m)
	assert.Equal(t, float64(130), *m)
}

func TestOLSSlope(t *testing.T) {
	assert.Nil(t, score.OLSSlope(nil), "no points must be nil")
	assert.Nil(t, score.OLSSlope([]score.SeriesPoint{
		{Date: "2026-02-01", Value: 120},
	}), "a single point cannot define a slope")
	assert.Nil(t, score.OLSSlope([]score.SeriesPoint{
		{Date: "2026-02-01", Value: 120},
		{Date: "2026-02-01", Value: 130},
	}), "points on the same day cannot define a slope")

	slope := score.OLSSlope([]score.SeriesPoint{
		{Date: "2026-02-01", Value: 120},
		{Date: "2026-02-03", Value: 124},
		{Date: "2026-02-05", Value: 128},
	})
	assert.NotNil(t, slope)
	assert.InDelta(t, 2.0, *slope, 1e-9, "wrong slope per day")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, score.Clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, score.Clamp(1.5, 0, 1))
	assert.Equal(t, 0.4, score.Clamp(0.4, 0, 1))
}

func TestDailySeries(t *testing.T) {
	loc := time.UTC
	ms := []schema.Measurement{
		bpReading("u1", "2026-02-01T08:00:00Z", 120, 80),
		bpReading("u1", "2026-02-01T20:00:00Z", 130, 84),
		bpReading("u1", "2026-02-03T08:00:00Z", 140, 90),
	}

	series := score.DailySeries(ms, loc, func(p schema.MeasurementPayload) *float64 { return p.Systolic })
	assert.Len(t, series, 2, "same-day readings collapse into one point")
	assert.Equal(t, "2026-02-01", series[0].Date)
	assert.Equal(t, float64(125), series[0].Value, "same-day readings are averaged")
	assert.Equal(t, "2026-02-03", series[1].Date)
	assert.Equal(t, float64(140), series[1].Value)
}

func bpReading(userID, at string, sys, dia float64) schema.Measurement {
	measuredAt, _ := time.Parse(time.RFC3339, at)
	return schema.Measurement{
		UserID:     userID,
		Type:       schema.MeasurementBloodPressure,
		MeasuredAt: measuredAt,
		Source:     schema.DefaultMeasurementSource,
		Payload: schema.MeasurementPayload{
			Systolic:  score.Float64(sys),
			Diastolic: score.Float64(dia),
		},
	}
}

func weightReading(userID, at string, kg float64) schema.Measurement {
	measuredAt, _ := time.Parse(time.RFC3339, at)
	return schema.Measurement{
		UserID:     userID,
		Type:       schema.MeasurementWeight,
		MeasuredAt: measuredAt,
		Source:     schema.DefaultMeasurementSource,
		Payload:    schema.MeasurementPayload{Kg: score.Float64(kg)},
	}
}

func sleepReading(userID, at string, hours float64) schema.Measurement {
	measuredAt, _ := time.Parse(time.RFC3339, at)
	return schema.Measurement{
		UserID:     userID,
		Type:       schema.MeasurementSleep,
		MeasuredAt: measuredAt,
		Payload:    schema.MeasurementPayload{Hours: score.Float64(hours)},
	}
}

func stepsReading(userID, at string, count float64) schema.Measurement {
	measuredAt, _ := time.Parse(time.RFC3339, at)
	return schema.Measurement{
		UserID:     userID,
		Type:       schema.MeasurementSteps,
		MeasuredAt: measuredAt,
		Payload:    schema.MeasurementPayload{Count: score.Float64(count)},
	}
}
