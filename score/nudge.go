package score

import (
	"strings"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

// DaySeed converts a calendar-day key to its seed integer: the digits of the
// date with separators removed (2026-02-28 -> 20260228). The seed is part of
// the selection contract, not a PRNG; the same date always yields the same
// seed.
func DaySeed(date string) int {
	seed := 0
	for _, r := range date {
		if r < '0' || r > '9' {
			continue
		}
		seed = seed*10 + int(r-'0')
	}
	return seed
}

// TagForDriver maps a driver name to a nudge tag via fixed keyword rules.
// Unmatched names fall back to movement.
func TagForDriver(name string) schema.NudgeTag {
	source := strings.ToLower(name)

	switch {
	case strings.Contains(source, "sleep"):
		return schema.NudgeSleep
	case strings.Contains(source, "step"), strings.Contains(source, "movement"), strings.Contains(source, "activity"):
		return schema.NudgeMovement
	case strings.Contains(source, "weight"):
		return schema.NudgeWeight
	case strings.Contains(source, "bp"), strings.Contains(source, "systolic"), strings.Contains(source, "diastolic"), strings.Contains(source, "pressure"):
		return schema.NudgeSodium
	case strings.Contains(source, "med"), strings.Contains(source, "adherence"):
		return schema.NudgeMeds
	case strings.Contains(source, "hrv"), strings.Contains(source, "hr"):
		return schema.NudgeHydration
	default:
		return schema.NudgeMovement
	}
}

func catalogByTag(tag schema.NudgeTag) []schema.NudgeItem {
	pool := make([]schema.NudgeItem, 0, len(schema.NudgeCatalog))
	for _, item := range schema.NudgeCatalog {
		if item.Tag == tag {
			pool = append(pool, item)
		}
	}
	return pool
}

// PickDailyNudge deterministically selects one catalog item for a date. The
// tag comes from the driver with the largest absolute contribution; a red
// band narrows the pool to burden-1 items when any exist. The same (band,
// drivers, date) always yields the same nudge.
func PickDailyNudge(band schema.RiskBand, drivers []schema.Driver, date string) schema.NudgeItem {
	var top *schema.Driver
	for i := range drivers {
		if top == nil || abs(drivers[i].Contribution) > abs(top.Contribution) {
			top = &drivers[i]
		}
	}

	tag := schema.NudgeMovement
	if top != nil {
		tag = TagForDriver(top.Name)
	}

	pool := catalogByTag(tag)
	if len(pool) == 0 {
		pool = catalogByTag(schema.NudgeMovement)
	}

	if band == schema.BandRed {
		lowBurden := make([]schema.NudgeItem, 0, len(pool))
		for _, item := range pool {
			if item.Burden == 1 {
				lowBurden = append(lowBurden, item)
			}
		}
		if len(lowBurden) > 0 {
			pool = lowBurden
		}
	}

	return pool[DaySeed(date)%len(pool)]
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
