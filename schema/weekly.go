package schema

import "time"

const (
	WeeklyRiskSummaryCollection = "weeklyRiskSummary"
	CarePlanCollection          = "carePlan"
)

type WeeklyTrend string

const (
	TrendImproving WeeklyTrend = "improving"
	TrendStable    WeeklyTrend = "stable"
	TrendWorsening WeeklyTrend = "worsening"
)

// WeeklyMetrics are the 7-day averages and 14-day slopes the weekly rollup is
// built from. Nil means the underlying window had no usable data.
type WeeklyMetrics struct {
	RiskScoreAvg7d   *float64 `json:"risk_score_avg_7d" bson:"risk_score_avg_7d,omitempty"`
	RiskScoreSlope14 *float64 `json:"risk_score_slope_14d" bson:"risk_score_slope_14d,omitempty"`
	BPSysAvg7d       *float64 `json:"bp_sys_avg_7d" bson:"bp_sys_avg_7d,omitempty"`
	BPSysSlope14d    *float64 `json:"bp_sys_slope_14d" bson:"bp_sys_slope_14d,omitempty"`
	BPDiaAvg7d       *float64 `json:"bp_dia_avg_7d" bson:"bp_dia_avg_7d,omitempty"`
	BPDiaSlope14d    *float64 `json:"bp_dia_slope_14d" bson:"bp_dia_slope_14d,omitempty"`
	WeightAvg7d      *float64 `json:"weight_avg_7d" bson:"weight_avg_7d,omitempty"`
	WeightSlope14d   *float64 `json:"weight_slope_14d" bson:"weight_slope_14d,omitempty"`
}

type WeeklySignals struct {
	Trend                 WeeklyTrend `json:"trend" bson:"trend"`
	DeteriorationDetected bool        `json:"deterioration_detected" bson:"deterioration_detected"`
}

// WeeklyRiskSummary is the weekly rollup for one (user, weekStart).
type WeeklyRiskSummary struct {
	UserID       string        `json:"user_id" bson:"user_id"`
	WeekStart    string        `json:"week_start" bson:"week_start"`
	WeekEnd      string        `json:"week_end" bson:"week_end"`
	Metrics      WeeklyMetrics `json:"metrics" bson:"metrics"`
	Signals      WeeklySignals `json:"signals" bson:"signals"`
	Explanations []string      `json:"explanations" bson:"explanations"`
	SummaryText  string        `json:"summary_text" bson:"summary_text"`
	ComputedAt   time.Time     `json:"computed_at" bson:"computed_at"`
}

type CarePlanAction struct {
	Title  string `json:"title" bson:"title"`
	Detail string `json:"detail" bson:"detail"`
	Metric string `json:"metric" bson:"metric"`
	Target string `json:"target" bson:"target"`
}

// CarePlan is derived entirely from the WeeklyRiskSummary; one per
// (user, weekStart). The actions list is never empty.
type CarePlan struct {
	UserID     string           `json:"user_id" bson:"user_id"`
	WeekStart  string           `json:"week_start" bson:"week_start"`
	WeekEnd    string           `json:"week_end" bson:"week_end"`
	Summary    string           `json:"summary" bson:"summary"`
	FocusAreas []string         `json:"focus_areas" bson:"focus_areas"`
	Actions    []CarePlanAction `json:"actions" bson:"actions"`
	ComputedAt time.Time        `json:"computed_at" bson:"computed_at"`
}
