package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/score"
)

func TestBandForScore(t *testing.T) {
	assert.Equal(t, schema.BandUnknown, score.BandForScore(nil))
	assert.Equal(t, schema.BandGreen, score.BandForScore(score.Float64(0)))
	assert.Equal(t, schema.BandGreen, score.BandForScore(score.Float64(0.3299)))
	assert.Equal(t, schema.BandAmber, score.BandForScore(score.Float64(0.33)))
	assert.Equal(t, schema.BandAmber, score.BandForScore(score.Float64(0.6599)))
	assert.Equal(t, schema.BandRed, score.BandForScore(score.Float64(0.66)))
	assert.Equal(t, schema.BandRed, score.BandForScore(score.Float64(1)))
}

func TestComputeRiskUnavailable(t *testing.T) {
	record := score.ComputeRisk(schema.FeatureSnapshot{
		UserID: "u1",
		Date:   "2026-02-28",
	})

	assert.Nil(t, record.Risk)
	assert.Equal(t, schema.BandUnknown, record.Band)
	assert.Empty(t, record.Drivers)
	assert.Equal(t, schema.RiskModelUnavailable, record.ModelVersion)
}

func TestComputeRiskElevatedBP(t *testing.T) {
	record := score.ComputeRisk(schema.FeatureSnapshot{
		UserID: "u1",
		Date:   "2026-02-28",
		Features: schema.Features{
			BPSysAvg7d:    score.Float64(140),
			BPSysSlope14d: score.Float64(1.0),
			BPDiaAvg7d:    score.Float64(90),
		},
	})

	assert.NotNil(t, record.Risk)
	assert.True(t, *record.Risk >= 0 && *record.Risk <= 1, "risk must stay in [0,1]")
	assert.Contains(t, []schema.RiskBand{schema.BandAmber, schema.BandRed}, record.Band,
		"elevated, rising BP must leave the green band")
	assert.Equal(t, schema.RiskModelRules, record.ModelVersion)

	assert.NotEmpty(t, record.Drivers)
	top := record.Drivers[0]
	assert.Contains(t, top.Name, "bp_sys", "top driver must be the BP feature")
	assert.Equal(t, schema.DriverUp, top.Direction)
}

func TestComputeRiskDriverOrdering(t *testing.T) {
	record := score.ComputeRisk(schema.FeatureSnapshot{
		UserID: "u1",
		Date:   "2026-02-28",
		Features: schema.Features{
			BPSysAvg7d: score.Float64(125),  // small positive contribution
			SleepDebtH: score.Float64(2.25), // larger contribution
			StepsAvg7d: score.Float64(6000), // exactly neutral
		},
	})

	assert.Len(t, record.Drivers, 3)
	for i := 1; i < len(record.Drivers); i++ {
		prev := record.Drivers[i-1].Contribution
		cur := record.Drivers[i].Contribution
		if prev < 0 {
			prev = -prev
		}
		if cur < 0 {
			cur = -cur
		}
		assert.True(t, prev >= cur, "drivers must be sorted by absolute contribution")
	}
	assert.Equal(t, schema.FeatureSleepDebtH, record.Drivers[0].Name)
	assert.Equal(t, schema.FeatureStepsAvg7d, record.Drivers[2].Name)
}

func TestComputeRiskNilFeaturesExcluded(t *testing.T) {
	record := score.ComputeRisk(schema.FeatureSnapshot{
		UserID: "u1",
		Date:   "2026-02-28",
		Features: schema.Features{
			BPSysAvg7d: score.Float64(140),
		},
	})

	assert.Len(t, record.Drivers, 1, "nil features never appear as drivers")
	assert.Equal(t, schema.FeatureBPSysAvg7d, record.Drivers[0].Name)
}

func TestComputeRiskProtectiveFeaturesLowerScore(t *testing.T) {
	elevated := score.ComputeRisk(schema.FeatureSnapshot{
		Features: schema.Features{BPSysAvg7d: score.Float64(140)},
	})
	withActivity := score.ComputeRisk(schema.FeatureSnapshot{
		Features: schema.Features{
			BPSysAvg7d: score.Float64(140),
			StepsAvg7d: score.Float64(12000),
			HRVAvg7d:   score.Float64(85),
		},
	})

	assert.True(t, *withActivity.Risk < *elevated.Risk,
		"high activity and HRV must pull the score down")

	for _, d := range withActivity.Drivers {
		if d.Name == schema.FeatureStepsAvg7d || d.Name == schema.FeatureHRVAvg7d {
			assert.Equal(t, schema.DriverDown, d.Direction, "protective drivers point down")
		}
	}
}

func TestComputeRiskContributionBound(t *testing.T) {
	record := score.ComputeRisk(schema.FeatureSnapshot{
		Features: schema.Features{
			BPSysSlope14d: score.Float64(100), // absurdly steep
		},
	})

	assert.InDelta(t, 0.2, record.Drivers[0].Contribution, 1e-9,
		"single contributions are clamped to the bound")
	assert.True(t, *record.Risk <= 1)
}

func TestComputeRiskIdempotent(t *testing.T) {
	snapshot := schema.FeatureSnapshot{
		UserID: "u1",
		Date:   "2026-02-28",
		Features: schema.Features{
			BPSysAvg7d:    score.Float64(140),
			BPSysSlope14d: score.Float64(0.5),
			SleepDebtH:    score.Float64(1.5),
		},
	}

	first := score.ComputeRisk(snapshot)
	second := score.ComputeRisk(snapshot)
	assert.Equal(t, first, second, "recomputation with unchanged inputs must be identical")
}
