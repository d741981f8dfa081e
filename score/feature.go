package score

import (
	"time"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/utils"
)

const (
	averageWindowDays = 7
	slopeWindowDays   = 14

	// DefaultTargetSleepHours is the nightly sleep target the sleep-debt
	// feature measures against.
	DefaultTargetSleepHours = 7.0
)

func payloadSystolic(p schema.MeasurementPayload) *float64  { return p.Systolic }
func payloadDiastolic(p schema.MeasurementPayload) *float64 { return p.Diastolic }
func payloadKg(p schema.MeasurementPayload) *float64        { return p.Kg }
func payloadCount(p schema.MeasurementPayload) *float64     { return p.Count }
func payloadHours(p schema.MeasurementPayload) *float64     { return p.Hours }
func payloadRMSSD(p schema.MeasurementPayload) *float64     { return p.RMSSD }

// windowSamples collects the raw per-sample values of one metric inside
// [from, to] calendar days, without day bucketing. Averages are the mean of
// present samples.
func windowSamples(measurements []schema.Measurement, loc *time.Location, t schema.MeasurementType, from, to string, value func(schema.MeasurementPayload) *float64) []float64 {
	values := make([]float64, 0, len(measurements))
	for _, m := range measurements {
		if m.Type != t {
			continue
		}
		v := value(m.Payload)
		if v == nil {
			continue
		}
		day := utils.DayKey(m.MeasuredAt, loc)
		if day < from || day > to {
			continue
		}
		values = append(values, *v)
	}
	return values
}

func typed(measurements []schema.Measurement, t schema.MeasurementType) []schema.Measurement {
	out := make([]schema.Measurement, 0, len(measurements))
	for _, m := range measurements {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// ComputeFeatureSnapshot aggregates raw measurements into the rolling-window
// statistics for one user on one date. Windows end at the target date
// inclusive, with calendar-day boundaries in the given location. Metrics with
// no samples in range stay nil; a user with no measurements at all yields a
// valid all-nil snapshot.
func ComputeFeatureSnapshot(userID, date string, measurements []schema.Measurement, loc *time.Location, targetSleepHours float64) schema.FeatureSnapshot {
	avgFrom := utils.AddDays(date, -(averageWindowDays - 1))
	slopeFrom := utils.AddDays(date, -(slopeWindowDays - 1))

	features := schema.Features{
		BPSysAvg7d:  Mean(windowSamples(measurements, loc, schema.MeasurementBloodPressure, avgFrom, date, payloadSystolic)),
		BPDiaAvg7d:  Mean(windowSamples(measurements, loc, schema.MeasurementBloodPressure, avgFrom, date, payloadDiastolic)),
		WeightAvg7d: Mean(windowSamples(measurements, loc, schema.MeasurementWeight, avgFrom, date, payloadKg)),
		StepsAvg7d:  Mean(windowSamples(measurements, loc, schema.MeasurementSteps, avgFrom, date, payloadCount)),
		HRVAvg7d:    Mean(windowSamples(measurements, loc, schema.MeasurementHRV, avgFrom, date, payloadRMSSD)),
	}

	// slopes are fit on per-day means so multiple readings in one day count
	// as a single distinct day
	sysSeries := DailySeries(typed(measurements, schema.MeasurementBloodPressure), loc, payloadSystolic)
	features.BPSysSlope14d = OLSSlope(WindowSeries(sysSeries, slopeFrom, date))

	weightSeries := DailySeries(typed(measurements, schema.MeasurementWeight), loc, payloadKg)
	features.WeightSlope14d = OLSSlope(WindowSeries(weightSeries, slopeFrom, date))

	if target := targetSleepHours; target > 0 {
		if avg := Mean(windowSamples(measurements, loc, schema.MeasurementSleep, avgFrom, date, payloadHours)); avg != nil {
			debt := Clamp(target-*avg, 0, target)
			features.SleepDebtH = &debt
		}
	}

	return schema.FeatureSnapshot{
		UserID:   userID,
		Date:     date,
		Features: features,
	}
}
