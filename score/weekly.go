package score

import (
	"fmt"
	"strings"
	"time"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/utils"
)

// Deterioration thresholds of the weekly rollup.
const (
	weeklyRiskSlopeThreshold   = 0.003
	weeklySysSlopeThreshold    = 0.4
	weeklyDiaSlopeThreshold    = 0.2
	weeklyWeightSlopeThreshold = 0.05

	weeklySysAvgElevated = 130
	weeklyDiaAvgElevated = 80
)

// Care-plan rule thresholds.
const (
	planSysAvgThreshold     = 130
	planSysSlopeThreshold   = 0.3
	planWeightSlope         = 0.04
	planRiskSlopeThreshold  = 0.003
)

// RiskSeries flattens daily risk records into a series, skipping unscored
// days.
func RiskSeries(records []schema.RiskRecord) []SeriesPoint {
	series := make([]SeriesPoint, 0, len(records))
	for _, r := range records {
		if r.Risk == nil {
			continue
		}
		series = append(series, SeriesPoint{Date: r.AsOfDate, Value: *r.Risk})
	}
	return series
}

// VitalsSeries buckets raw measurements into the daily systolic, diastolic and
// weight series the weekly rollup consumes.
func VitalsSeries(measurements []schema.Measurement, loc *time.Location) (sys, dia, weight []SeriesPoint) {
	sys = DailySeries(measurements, loc, payloadSystolic)
	dia = DailySeries(measurements, loc, payloadDiastolic)
	weight = DailySeries(measurements, loc, payloadKg)
	return sys, dia, weight
}

func formatDelta(slope *float64, unit string) string {
	if slope == nil {
		return ""
	}
	delta := *slope * (slopeWindowDays - 1)
	sign := ""
	if delta >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f %s", sign, delta, unit)
}

func riseOrFall(slope float64, rising, falling string) string {
	if slope > 0 {
		return rising
	}
	return falling
}

func exceeds(slope *float64, threshold float64) bool {
	if slope == nil {
		return false
	}
	return abs(*slope) >= threshold
}

// ComputeWeeklySummary rolls a fortnight of daily series into the weekly
// metrics, deterioration signals and explanation sentences. Series hold one
// point per calendar day, sorted ascending, ending at asOfDate; the same
// null-propagation rule as the feature extractor applies, so empty windows
// stay nil.
func ComputeWeeklySummary(userID, asOfDate string, riskSeries, sysSeries, diaSeries, weightSeries []SeriesPoint) schema.WeeklyRiskSummary {
	weekStart := utils.WeekStart(asOfDate)
	avgFrom := utils.AddDays(asOfDate, -(averageWindowDays - 1))

	metrics := schema.WeeklyMetrics{
		RiskScoreAvg7d:   Mean(WindowValues(riskSeries, avgFrom, asOfDate)),
		RiskScoreSlope14: OLSSlope(riskSeries),
		BPSysAvg7d:       Mean(WindowValues(sysSeries, avgFrom, asOfDate)),
		BPSysSlope14d:    OLSSlope(sysSeries),
		BPDiaAvg7d:       Mean(WindowValues(diaSeries, avgFrom, asOfDate)),
		BPDiaSlope14d:    OLSSlope(diaSeries),
		WeightAvg7d:      Mean(WindowValues(weightSeries, avgFrom, asOfDate)),
		WeightSlope14d:   OLSSlope(weightSeries),
	}

	hasAnyData := len(riskSeries) > 0 || len(sysSeries) > 0 || len(diaSeries) > 0 || len(weightSeries) > 0

	explanations := []string{}
	if metrics.RiskScoreAvg7d != nil {
		explanations = append(explanations, fmt.Sprintf("This week's average risk score is %.2f.", *metrics.RiskScoreAvg7d))
	}
	if !hasAnyData {
		explanations = append(explanations, "Add at least a few BP and weight readings to generate weekly trends.")
	}
	if exceeds(metrics.RiskScoreSlope14, weeklyRiskSlopeThreshold) {
		explanations = append(explanations, fmt.Sprintf("Risk score is trending %s over 2 weeks (%s).",
			riseOrFall(*metrics.RiskScoreSlope14, "up", "down"), formatDelta(metrics.RiskScoreSlope14, "risk score")))
	}
	if metrics.BPSysAvg7d != nil {
		explanations = append(explanations, fmt.Sprintf("Average systolic BP this week is %.0f mmHg.", *metrics.BPSysAvg7d))
	}
	if exceeds(metrics.BPSysSlope14d, weeklySysSlopeThreshold) {
		explanations = append(explanations, fmt.Sprintf("Systolic BP is %s (%s over 2 weeks).",
			riseOrFall(*metrics.BPSysSlope14d, "rising", "falling"), formatDelta(metrics.BPSysSlope14d, "mmHg")))
	}
	if metrics.BPDiaAvg7d != nil {
		explanations = append(explanations, fmt.Sprintf("Average diastolic BP this week is %.0f mmHg.", *metrics.BPDiaAvg7d))
	}
	if exceeds(metrics.BPDiaSlope14d, weeklyDiaSlopeThreshold) {
		explanations = append(explanations, fmt.Sprintf("Diastolic BP is %s (%s over 2 weeks).",
			riseOrFall(*metrics.BPDiaSlope14d, "rising", "falling"), formatDelta(metrics.BPDiaSlope14d, "mmHg")))
	}
	if metrics.WeightAvg7d != nil {
		explanations = append(explanations, fmt.Sprintf("Average weight this week is %.1f kg.", *metrics.WeightAvg7d))
	}
	if exceeds(metrics.WeightSlope14d, weeklyWeightSlopeThreshold) {
		explanations = append(explanations, fmt.Sprintf("Weight is %s (%s over 2 weeks).",
			riseOrFall(*metrics.WeightSlope14d, "increasing", "decreasing"), formatDelta(metrics.WeightSlope14d, "kg")))
	}

	deterioration := (metrics.RiskScoreSlope14 != nil && *metrics.RiskScoreSlope14 > weeklyRiskSlopeThreshold) ||
		(metrics.BPSysSlope14d != nil && metrics.BPSysAvg7d != nil &&
			*metrics.BPSysAvg7d >= weeklySysAvgElevated && *metrics.BPSysSlope14d > weeklySysSlopeThreshold) ||
		(metrics.BPDiaSlope14d != nil && metrics.BPDiaAvg7d != nil &&
			*metrics.BPDiaAvg7d >= weeklyDiaAvgElevated && *metrics.BPDiaSlope14d > weeklyDiaSlopeThreshold) ||
		(metrics.WeightSlope14d != nil && *metrics.WeightSlope14d > weeklyWeightSlopeThreshold)

	trend := schema.TrendStable
	if metrics.RiskScoreSlope14 != nil {
		if *metrics.RiskScoreSlope14 > weeklyRiskSlopeThreshold {
			trend = schema.TrendWorsening
		} else if *metrics.RiskScoreSlope14 < -weeklyRiskSlopeThreshold {
			trend = schema.TrendImproving
		}
	} else if deterioration {
		trend = schema.TrendWorsening
	}

	var summaryText string
	switch {
	case !hasAnyData:
		summaryText = "Weekly risk summary: not enough data yet. Log measurements to see trends."
	case deterioration:
		summaryText = "Weekly risk summary: gradual deterioration detected. Focus on BP control and weight stability."
	case trend == schema.TrendImproving:
		summaryText = "Weekly risk summary: trends are improving. Keep up the current routine."
	default:
		summaryText = "Weekly risk summary: trends are stable. Maintain current habits and monitoring."
	}

	return schema.WeeklyRiskSummary{
		UserID:    userID,
		WeekStart: weekStart,
		WeekEnd:   utils.AddDays(weekStart, 6),
		Metrics:   metrics,
		Signals: schema.WeeklySignals{
			Trend:                 trend,
			DeteriorationDetected: deterioration,
		},
		Explanations: explanations,
		SummaryText:  summaryText,
	}
}

// BuildCarePlan derives the week's focus areas and actions from the weekly
// summary through fixed rules, evaluated in order. When no rule fires a
// maintenance plan is emitted so the plan is never empty.
func BuildCarePlan(summary schema.WeeklyRiskSummary) schema.CarePlan {
	m := summary.Metrics

	focusAreas := []string{}
	actions := []schema.CarePlanAction{}

	if (m.BPSysAvg7d != nil && *m.BPSysAvg7d >= planSysAvgThreshold) ||
		(m.BPSysSlope14d != nil && *m.BPSysSlope14d > planSysSlopeThreshold) {
		focusAreas = append(focusAreas, "Blood pressure")
		actions = append(actions, schema.CarePlanAction{
			Title:  "Daily BP check-in",
			Detail: "Log BP at the same time each day (morning recommended).",
			Metric: "Systolic BP",
			Target: "Aim < 130 mmHg",
		})
	}

	if m.WeightSlope14d != nil && *m.WeightSlope14d > planWeightSlope {
		focusAreas = append(focusAreas, "Weight stability")
		actions = append(actions, schema.CarePlanAction{
			Title:  "Weight check-ins",
			Detail: "Weigh 3-4x this week, same time of day.",
			Metric: "Weight trend",
			Target: "Keep weekly change near 0 kg",
		})
	}

	if m.RiskScoreSlope14 != nil && *m.RiskScoreSlope14 > planRiskSlopeThreshold {
		focusAreas = append(focusAreas, "Risk trend")
		actions = append(actions, schema.CarePlanAction{
			Title:  "Consistency sprint",
			Detail: "Log vitals and symptoms daily to stabilize trend signals.",
			Metric: "Risk score trend",
			Target: "Hold or improve weekly trend",
		})
	}

	if len(actions) == 0 {
		focusAreas = append(focusAreas, "Maintenance")
		actions = append(actions, schema.CarePlanAction{
			Title:  "Maintain routine",
			Detail: "Keep logging 2-3x this week to sustain stable trends.",
			Metric: "Overall risk",
			Target: "Stay consistent",
		})
	}

	return schema.CarePlan{
		UserID:     summary.UserID,
		WeekStart:  summary.WeekStart,
		WeekEnd:    summary.WeekEnd,
		Summary:    fmt.Sprintf("This week's focus: %s.", strings.Join(focusAreas, ", ")),
		FocusAreas: focusAreas,
		Actions:    actions,
	}
}
