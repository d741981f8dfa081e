package schema

import "time"

const FeatureSnapshotCollection = "featureSnapshot"

// Feature name keys, in rule declaration order. The order breaks contribution
// ties when ranking risk drivers.
const (
	FeatureBPSysAvg7d     = "bp_sys_avg_7d"
	FeatureBPSysSlope14d  = "bp_sys_slope_14d"
	FeatureBPDiaAvg7d     = "bp_dia_avg_7d"
	FeatureWeightAvg7d    = "weight_avg_7d"
	FeatureWeightSlope14d = "weight_slope_14d"
	FeatureSleepDebtH     = "sleep_debt_h"
	FeatureStepsAvg7d     = "steps_avg_7d"
	FeatureHRVAvg7d       = "hrv_avg_7d"
)

// Features holds the rolling-window statistics for one user on one date. A
// nil field means the window had no usable samples; nil is distinct from a
// computed zero and propagates through every downstream consumer.
type Features struct {
	BPSysAvg7d     *float64 `json:"bp_sys_avg_7d" bson:"bp_sys_avg_7d,omitempty"`
	BPSysSlope14d  *float64 `json:"bp_sys_slope_14d" bson:"bp_sys_slope_14d,omitempty"`
	BPDiaAvg7d     *float64 `json:"bp_dia_avg_7d" bson:"bp_dia_avg_7d,omitempty"`
	WeightAvg7d    *float64 `json:"weight_avg_7d" bson:"weight_avg_7d,omitempty"`
	WeightSlope14d *float64 `json:"weight_slope_14d" bson:"weight_slope_14d,omitempty"`
	SleepDebtH     *float64 `json:"sleep_debt_h" bson:"sleep_debt_h,omitempty"`
	StepsAvg7d     *float64 `json:"steps_avg_7d" bson:"steps_avg_7d,omitempty"`
	HRVAvg7d       *float64 `json:"hrv_avg_7d" bson:"hrv_avg_7d,omitempty"`
}

// Empty reports whether every feature is absent.
func (f Features) Empty() bool {
	return f.BPSysAvg7d == nil &&
		f.BPSysSlope14d == nil &&
		f.BPDiaAvg7d == nil &&
		f.WeightAvg7d == nil &&
		f.WeightSlope14d == nil &&
		f.SleepDebtH == nil &&
		f.StepsAvg7d == nil &&
		f.HRVAvg7d == nil
}

// FeatureSnapshot is the persisted feature set for one (user, date).
// Recomputation is idempotent: the same underlying measurements always
// produce the same values.
type FeatureSnapshot struct {
	UserID     string    `json:"user_id" bson:"user_id"`
	Date       string    `json:"date" bson:"date"`
	Features   Features  `json:"features" bson:"features"`
	ComputedAt time.Time `json:"computed_at" bson:"computed_at"`
}
