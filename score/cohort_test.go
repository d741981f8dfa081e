package score_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cardiometrix/cardiometrix-api/score"
	"github.com/cardiometrix/cardiometrix-api/schema"
)

func TestComputeCohortComparisonEmptyProfile(t *testing.T) {
	now := time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)

	cmp := score.ComputeCohortComparison(schema.AccountProfile{}, nil, nil, now)

	assert.Equal(t, "Unknown age · unspecified", cmp.CohortLabel)
	assert.Equal(t, 120.0, cmp.Benchmarks.Systolic)
	assert.Equal(t, 76.0, cmp.Benchmarks.Diastolic)
	assert.Nil(t, cmp.User.Systolic)
	assert.Nil(t, cmp.User.BMI)
	assert.Equal(t, "Add BP/weight and profile details to see your cohort comparison.", cmp.Summary)
	assert.Equal(t, "Benchmarks are estimates for general reference only.", cmp.Note)
}

func TestComputeCohortComparisonAgeAdjustment(t *testing.T) {
	now := time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)

	dob := time.Date(1980, 6, 1, 0, 0, 0, 0, time.UTC)
	cmp := score.ComputeCohortComparison(schema.AccountProfile{Sex: "male", DateOfBirth: &dob}, nil, nil, now)
	assert.Equal(t, "40-59 · male", cmp.CohortLabel)
	assert.Equal(t, 126.0, cmp.Benchmarks.Systolic)
	assert.Equal(t, 80.0, cmp.Benchmarks.Diastolic)

	dob = time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	cmp = score.ComputeCohortComparison(schema.AccountProfile{Sex: "female", DateOfBirth: &dob}, nil, nil, now)
	assert.Equal(t, "60+ · female", cmp.CohortLabel)
	assert.Equal(t, 126.0, cmp.Benchmarks.Systolic)
	assert.Equal(t, 77.0, cmp.Benchmarks.Diastolic)

	dob = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	cmp = score.ComputeCohortComparison(schema.AccountProfile{DateOfBirth: &dob}, nil, nil, now)
	assert.Equal(t, "Under 40 · unspecified", cmp.CohortLabel)
	assert.Equal(t, 120.0, cmp.Benchmarks.Systolic)
}

func TestComputeCohortComparisonBirthdayBoundary(t *testing.T) {
	now := time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)

	// 40th birthday is tomorrow, still 39
	dob := time.Date(1986, 3, 1, 0, 0, 0, 0, time.UTC)
	cmp := score.ComputeCohortComparison(schema.AccountProfile{DateOfBirth: &dob}, nil, nil, now)
	assert.Equal(t, "Under 40 · unspecified", cmp.CohortLabel)

	// 40th birthday is today
	dob = time.Date(1986, 2, 28, 0, 0, 0, 0, time.UTC)
	cmp = score.ComputeCohortComparison(schema.AccountProfile{DateOfBirth: &dob}, nil, nil, now)
	assert.Equal(t, "40-59 · unspecified", cmp.CohortLabel)
}

func TestComputeCohortComparisonUserValues(t *testing.T) {
	now := time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)
	height := 170.0
	profile := schema.AccountProfile{Sex: "male", HeightCM: &height}

	bp := bpReading("u1", "2026-02-28T09:00:00Z", 135, 85)
	weight := weightReading("u1", "2026-02-28T08:00:00Z", 78)

	cmp := score.ComputeCohortComparison(profile, &bp, &weight, now)

	assert.Equal(t, 135.0, *cmp.User.Systolic)
	assert.Equal(t, 85.0, *cmp.User.Diastolic)
	assert.InDelta(t, 26.99, *cmp.User.BMI, 0.01)
	assert.Equal(t, "Your BP is 135/85 vs cohort 122/78. BMI 27.0 vs healthy 18.5-24.9.", cmp.Summary)
}

func TestComputeCohortComparisonBMINeedsHeight(t *testing.T) {
	now := time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)

	weight := weightReading("u1", "2026-02-28T08:00:00Z", 78)
	cmp := score.ComputeCohortComparison(schema.AccountProfile{}, nil, &weight, now)

	assert.Nil(t, cmp.User.BMI)
	assert.Equal(t, "Add BP/weight and profile details to see your cohort comparison.", cmp.Summary)
}
