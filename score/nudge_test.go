package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/score"
)

func TestDaySeed(t *testing.T) {
	assert.Equal(t, 20260228, score.DaySeed("2026-02-28"))
	assert.Equal(t, 20260101, score.DaySeed("2026-01-01"))
}

func TestTagForDriver(t *testing.T) {
	assert.Equal(t, schema.NudgeSleep, score.TagForDriver("Sleep debt"))
	assert.Equal(t, schema.NudgeSleep, score.TagForDriver("sleep_debt_h"))
	assert.Equal(t, schema.NudgeMovement, score.TagForDriver("steps_avg_7d"))
	assert.Equal(t, schema.NudgeWeight, score.TagForDriver("weight_slope_14d"))
	assert.Equal(t, schema.NudgeSodium, score.TagForDriver("bp_sys_avg_7d"))
	assert.Equal(t, schema.NudgeSodium, score.TagForDriver("Systolic pressure"))
	assert.Equal(t, schema.NudgeMeds, score.TagForDriver("medication adherence"))
	assert.Equal(t, schema.NudgeHydration, score.TagForDriver("hrv_avg_7d"))
	assert.Equal(t, schema.NudgeMovement, score.TagForDriver("something else"))
}

func TestPickDailyNudgeSleepDriver(t *testing.T) {
	item := score.PickDailyNudge(schema.BandAmber, []schema.Driver{
		{Name: "Sleep debt", Contribution: 0.2},
	}, "2026-02-28")

	assert.Equal(t, schema.NudgeSleep, item.Tag)
}

func TestPickDailyNudgeDeterministic(t *testing.T) {
	drivers := []schema.Driver{
		{Name: "bp_sys_avg_7d", Contribution: 0.15},
		{Name: "sleep_debt_h", Contribution: -0.05},
	}

	first := score.PickDailyNudge(schema.BandAmber, drivers, "2026-02-28")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, score.PickDailyNudge(schema.BandAmber, drivers, "2026-02-28"),
			"same band, drivers and date must always yield the same nudge")
	}

	assert.Equal(t, schema.NudgeSodium, first.Tag, "largest |contribution| picks the tag")
}

func TestPickDailyNudgeLargestAbsoluteContribution(t *testing.T) {
	item := score.PickDailyNudge(schema.BandGreen, []schema.Driver{
		{Name: "bp_sys_avg_7d", Contribution: 0.05},
		{Name: "steps_avg_7d", Contribution: -0.18},
	}, "2026-02-28")

	assert.Equal(t, schema.NudgeMovement, item.Tag, "a large negative contribution still dominates")
}

func TestPickDailyNudgeRedPrefersLowBurden(t *testing.T) {
	// the weight pool carries burden 1 and 2; red must narrow it to burden 1
	for _, date := range []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"} {
		item := score.PickDailyNudge(schema.BandRed, []schema.Driver{
			{Name: "weight_slope_14d", Contribution: 0.2},
		}, date)
		assert.Equal(t, schema.NudgeWeight, item.Tag)
		assert.Equal(t, 1, item.Burden, "red band prefers the lowest-friction nudges")
	}
}

func TestPickDailyNudgeNoDrivers(t *testing.T) {
	item := score.PickDailyNudge(schema.BandUnknown, nil, "2026-02-28")
	assert.Equal(t, schema.NudgeMovement, item.Tag, "no drivers falls back to movement")
	assert.NotEmpty(t, item.Key)
}

func TestPickDailyNudgeVariesAcrossDates(t *testing.T) {
	drivers := []schema.Driver{{Name: "sleep_debt_h", Contribution: 0.2}}

	a := score.PickDailyNudge(schema.BandAmber, drivers, "2026-02-27")
	b := score.PickDailyNudge(schema.BandAmber, drivers, "2026-02-28")
	c := score.PickDailyNudge(schema.BandAmber, drivers, "2026-03-01")

	// the sleep pool has three entries; consecutive dates walk the pool
	keys := map[string]bool{a.Key: true, b.Key: true, c.Key: true}
	assert.True(t, len(keys) > 1, "selection should vary day to day")
}
