package pipeline

import (
	"time"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/score"
	"github.com/cardiometrix/cardiometrix-api/utils"
)

const (
	forecastHistoryDays = 90
	weeklyWindowDays    = 14
	anomalyWindowDays   = 14
)

// Forecast projects the user's risk trend onto the requested horizons, from
// up to 90 days of stored risk records. A nil result means not enough scored
// days exist.
func (p *Pipeline) Forecast(accountNumber string, horizons []int) (*score.Forecast, error) {
	loc, err := p.userLocation(accountNumber)
	if err != nil {
		return nil, err
	}
	today := utils.DayKey(time.Now(), loc)

	records, err := p.mongo.ListRiskRecords(accountNumber, utils.AddDays(today, -(forecastHistoryDays-1)), today)
	if err != nil {
		return nil, err
	}

	return score.ComputeForecast(records, horizons), nil
}

// WeeklySummary rolls the past fortnight into this week's summary and care
// plan, stores both and returns the summary. An empty date means today.
func (p *Pipeline) WeeklySummary(accountNumber, asOfDate string) (*schema.WeeklyRiskSummary, error) {
	loc, err := p.userLocation(accountNumber)
	if err != nil {
		return nil, err
	}
	if asOfDate == "" {
		asOfDate = utils.DayKey(time.Now(), loc)
	}

	records, err := p.mongo.ListRiskRecords(accountNumber, utils.AddDays(asOfDate, -(weeklyWindowDays-1)), asOfDate)
	if err != nil {
		return nil, err
	}

	measurements, err := p.measurementWindow(accountNumber, asOfDate, weeklyWindowDays, loc)
	if err != nil {
		return nil, err
	}

	sys, dia, weight := score.VitalsSeries(measurements, loc)
	summary := score.ComputeWeeklySummary(accountNumber, asOfDate, score.RiskSeries(records), sys, dia, weight)
	summary.ComputedAt = time.Now().UTC()

	if err := p.mongo.SaveWeeklySummary(summary); err != nil {
		return nil, err
	}

	plan := score.BuildCarePlan(summary)
	plan.ComputedAt = summary.ComputedAt
	if err := p.mongo.SaveCarePlan(plan); err != nil {
		return nil, err
	}

	return &summary, nil
}

// CarePlan returns the stored plan of the week containing asOfDate, deriving
// the week first when it has none yet.
func (p *Pipeline) CarePlan(accountNumber, asOfDate string) (*schema.CarePlan, error) {
	loc, err := p.userLocation(accountNumber)
	if err != nil {
		return nil, err
	}
	if asOfDate == "" {
		asOfDate = utils.DayKey(time.Now(), loc)
	}
	weekStart := utils.WeekStart(asOfDate)

	plan, err := p.mongo.GetCarePlan(accountNumber, weekStart)
	if err != nil {
		return nil, err
	}
	if plan != nil {
		return plan, nil
	}

	if _, err := p.WeeklySummary(accountNumber, asOfDate); err != nil {
		return nil, err
	}

	return p.mongo.GetCarePlan(accountNumber, weekStart)
}

// Anomalies re-scans the past fortnight of raw readings for out-of-range or
// rapidly-changing values.
func (p *Pipeline) Anomalies(accountNumber string) ([]score.Anomaly, error) {
	loc, err := p.userLocation(accountNumber)
	if err != nil {
		return nil, err
	}
	today := utils.DayKey(time.Now(), loc)

	measurements, err := p.measurementWindow(accountNumber, today, anomalyWindowDays, loc)
	if err != nil {
		return nil, err
	}

	return score.DetectAnomalies(measurements, loc, p.config.WeightJumpPercent), nil
}

// DataQuality scores the past week's logging completeness. Days with a vitals
// reading of any type count once, as do days with a symptom check-in or a
// medication log.
func (p *Pipeline) DataQuality(accountNumber string) (*schema.DataQualityResult, error) {
	loc, err := p.userLocation(accountNumber)
	if err != nil {
		return nil, err
	}
	today := utils.DayKey(time.Now(), loc)
	fromDay := utils.AddDays(today, -(score.DefaultQualityWindowDays - 1))

	measurements, err := p.measurementWindow(accountNumber, today, score.DefaultQualityWindowDays, loc)
	if err != nil {
		return nil, err
	}

	from, err := utils.DayStart(fromDay, loc)
	if err != nil {
		return nil, err
	}
	to, err := utils.DayStart(utils.AddDays(today, 1), loc)
	if err != nil {
		return nil, err
	}

	checkins, err := p.mongo.ListSymptomCheckins(accountNumber, from, to)
	if err != nil {
		return nil, err
	}

	adherence, err := p.mongo.ListAdherence(accountNumber, fromDay, today)
	if err != nil {
		return nil, err
	}

	vitalsDays := map[string]bool{}
	for _, m := range measurements {
		vitalsDays[utils.DayKey(m.MeasuredAt, loc)] = true
	}
	symptomDays := map[string]bool{}
	for _, c := range checkins {
		symptomDays[utils.DayKey(c.CheckedAt, loc)] = true
	}
	medsDays := map[string]bool{}
	for _, a := range adherence {
		medsDays[a.Date] = true
	}

	result := score.ComputeDataQuality(len(vitalsDays), len(symptomDays), len(medsDays), score.DefaultQualityWindowDays)
	return &result, nil
}

// Cohort benchmarks the user's latest vitals against their demographic
// reference values.
func (p *Pipeline) Cohort(accountNumber string) (*score.CohortComparison, error) {
	account, err := p.cardio.GetAccount(accountNumber)
	if err != nil {
		return nil, err
	}

	latestBP, err := p.mongo.LatestMeasurement(accountNumber, schema.MeasurementBloodPressure)
	if err != nil {
		return nil, err
	}
	latestWeight, err := p.mongo.LatestMeasurement(accountNumber, schema.MeasurementWeight)
	if err != nil {
		return nil, err
	}

	comparison := score.ComputeCohortComparison(account.Profile, latestBP, latestWeight, time.Now().UTC())
	return &comparison, nil
}
