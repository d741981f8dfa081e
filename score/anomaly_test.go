package score_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cardiometrix/cardiometrix-api/score"
	"github.com/cardiometrix/cardiometrix-api/schema"
)

func TestDetectAnomaliesEmpty(t *testing.T) {
	anomalies := score.DetectAnomalies(nil, time.UTC, score.DefaultWeightJumpPercent)
	assert.Empty(t, anomalies)
}

func TestDetectAnomaliesCriticalBP(t *testing.T) {
	ms := []schema.Measurement{
		bpReading("u1", "2026-02-28T09:00:00Z", 185, 95),
	}

	anomalies := score.DetectAnomalies(ms, time.UTC, score.DefaultWeightJumpPercent)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, score.SeverityCritical, anomalies[0].Severity)
	assert.Equal(t, "bp", anomalies[0].Type)
	assert.Equal(t, "2026-02-28", anomalies[0].Date)

	// diastolic alone can also be critical
	ms = []schema.Measurement{bpReading("u1", "2026-02-28T09:00:00Z", 150, 125)}
	anomalies = score.DetectAnomalies(ms, time.UTC, score.DefaultWeightJumpPercent)
	assert.NotEmpty(t, anomalies)
	assert.Equal(t, score.SeverityCritical, anomalies[0].Severity)
}

func TestDetectAnomaliesSystolicSpike(t *testing.T) {
	ms := []schema.Measurement{
		bpReading("u1", "2026-02-24T09:00:00Z", 120, 80),
		bpReading("u1", "2026-02-25T09:00:00Z", 122, 80),
		bpReading("u1", "2026-02-26T09:00:00Z", 118, 80),
		bpReading("u1", "2026-02-28T09:00:00Z", 140, 82),
	}

	anomalies := score.DetectAnomalies(ms, time.UTC, score.DefaultWeightJumpPercent)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, score.SeverityWarning, anomalies[0].Severity)
	assert.Equal(t, "Systolic spike", anomalies[0].Title)
}

func TestDetectAnomaliesSystolicDriftInfo(t *testing.T) {
	// 10 mmHg above baseline: info, not warning
	ms := []schema.Measurement{
		bpReading("u1", "2026-02-24T09:00:00Z", 120, 80),
		bpReading("u1", "2026-02-26T09:00:00Z", 120, 80),
		bpReading("u1", "2026-02-28T09:00:00Z", 130, 80),
	}

	anomalies := score.DetectAnomalies(ms, time.UTC, score.DefaultWeightJumpPercent)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, score.SeverityInfo, anomalies[0].Severity)
}

func TestDetectAnomaliesStableBPIsQuiet(t *testing.T) {
	ms := []schema.Measurement{
		bpReading("u1", "2026-02-26T09:00:00Z", 122, 80),
		bpReading("u1", "2026-02-27T09:00:00Z", 118, 78),
		bpReading("u1", "2026-02-28T09:00:00Z", 121, 79),
	}

	anomalies := score.DetectAnomalies(ms, time.UTC, score.DefaultWeightJumpPercent)
	assert.Empty(t, anomalies, "stable readings raise no flags")
}

func TestDetectAnomaliesWeightJump(t *testing.T) {
	ms := []schema.Measurement{
		weightReading("u1", "2026-02-24T08:00:00Z", 80),
		weightReading("u1", "2026-02-25T08:00:00Z", 80.2),
		weightReading("u1", "2026-02-28T08:00:00Z", 83),
	}

	anomalies := score.DetectAnomalies(ms, time.UTC, 2.0)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, "weight", anomalies[0].Type)
	assert.Equal(t, score.SeverityWarning, anomalies[0].Severity)
	assert.Contains(t, anomalies[0].Title, "gain")
}

func TestDetectAnomaliesWeightWithinTolerance(t *testing.T) {
	ms := []schema.Measurement{
		weightReading("u1", "2026-02-24T08:00:00Z", 80),
		weightReading("u1", "2026-02-28T08:00:00Z", 80.5),
	}

	anomalies := score.DetectAnomalies(ms, time.UTC, 2.0)
	assert.Empty(t, anomalies, "sub-threshold change is not an anomaly")
}

func TestDetectAnomaliesStateless(t *testing.T) {
	ms := []schema.Measurement{
		bpReading("u1", "2026-02-26T09:00:00Z", 120, 80),
		bpReading("u1", "2026-02-28T09:00:00Z", 190, 95),
	}

	first := score.DetectAnomalies(ms, time.UTC, 2.0)
	second := score.DetectAnomalies(ms, time.UTC, 2.0)
	assert.Equal(t, first, second, "detection re-evaluates from raw history each call")
}
