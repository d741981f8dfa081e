package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardiometrix/cardiometrix-api/score"
)

func TestComputeDataQualityFullWindow(t *testing.T) {
	result := score.ComputeDataQuality(7, 7, 7, 7)

	assert.Equal(t, 100, result.Score, "logging every day yields a perfect score")
	assert.Equal(t, 50, result.Breakdown.Vitals)
	assert.Equal(t, 25, result.Breakdown.Symptoms)
	assert.Equal(t, 25, result.Breakdown.Meds)
	assert.Contains(t, result.Summary, "Great")
}

func TestComputeDataQualityEmptyWindow(t *testing.T) {
	result := score.ComputeDataQuality(0, 0, 0, 7)

	assert.Equal(t, 0, result.Score, "logging nothing yields zero")
	assert.Contains(t, result.Summary, "Limited")
}

func TestComputeDataQualityWeighting(t *testing.T) {
	// vitals every day, nothing else: exactly the vitals weight
	result := score.ComputeDataQuality(7, 0, 0, 7)
	assert.Equal(t, 50, result.Score)
	assert.Contains(t, result.Summary, "Limited")

	// vitals + symptoms daily lands in the decent tier
	result = score.ComputeDataQuality(7, 7, 0, 7)
	assert.Equal(t, 75, result.Score)
	assert.Contains(t, result.Summary, "decent")
}

func TestComputeDataQualityDefaultWindow(t *testing.T) {
	result := score.ComputeDataQuality(3, 2, 1, 0)
	assert.Equal(t, score.DefaultQualityWindowDays, result.WindowDays)
	assert.Equal(t, 3, result.Days.Vitals)
	assert.Equal(t, 2, result.Days.Symptoms)
	assert.Equal(t, 1, result.Days.Meds)
}
