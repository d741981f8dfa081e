package score

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/utils"
)

const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"

	criticalSystolic  = 180
	criticalDiastolic = 120

	systolicSpikeWarning  = 15
	systolicSpikeInfo     = 8
	diastolicSpikeWarning = 10

	// DefaultWeightJumpPercent flags weight gained within 48 hours.
	DefaultWeightJumpPercent = 2.0

	weightJumpWindow = 48 * time.Hour
)

// Anomaly is a single out-of-range or rapidly-changing reading flag.
type Anomaly struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Date     string `json:"date"`
}

func sortedDesc(measurements []schema.Measurement, t schema.MeasurementType) []schema.Measurement {
	rows := typed(measurements, t)
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].MeasuredAt.After(rows[j].MeasuredAt)
	})
	return rows
}

func baselineMean(rows []schema.Measurement, before time.Time, value func(schema.MeasurementPayload) *float64) *float64 {
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		if !r.MeasuredAt.Before(before) {
			continue
		}
		if v := value(r.Payload); v != nil {
			values = append(values, *v)
		}
	}
	return Mean(values)
}

// DetectAnomalies re-evaluates the recent measurement history against fixed
// thresholds. It is stateless: every call works from raw history, the latest
// reading plus its trailing baseline, and keeps no running detector state.
func DetectAnomalies(measurements []schema.Measurement, loc *time.Location, weightJumpPercent float64) []Anomaly {
	if weightJumpPercent <= 0 {
		weightJumpPercent = DefaultWeightJumpPercent
	}

	anomalies := []Anomaly{}

	bpRows := sortedDesc(measurements, schema.MeasurementBloodPressure)
	if len(bpRows) > 0 {
		latest := bpRows[0]
		date := utils.DayKey(latest.MeasuredAt, loc)
		sys := latest.Payload.Systolic
		dia := latest.Payload.Diastolic

		if (sys != nil && *sys >= criticalSystolic) || (dia != nil && *dia >= criticalDiastolic) {
			anomalies = append(anomalies, Anomaly{
				Type:     "bp",
				Severity: SeverityCritical,
				Title:    "Hypertensive range reading",
				Detail:   fmt.Sprintf("Latest reading %s is in a hypertensive range. Rest a few minutes and re-measure; seek care if it persists.", formatBP(sys, dia)),
				Date:     date,
			})
		}

		baselineSys := baselineMean(bpRows, latest.MeasuredAt, payloadSystolic)
		if sys != nil && baselineSys != nil {
			diff := *sys - *baselineSys
			if diff >= systolicSpikeWarning {
				anomalies = append(anomalies, Anomaly{
					Type:     "bp",
					Severity: SeverityWarning,
					Title:    "Systolic spike",
					Detail:   fmt.Sprintf("Latest systolic is %.0f mmHg, ~%.0f above your recent average.", *sys, diff),
					Date:     date,
				})
			} else if diff >= systolicSpikeInfo {
				anomalies = append(anomalies, Anomaly{
					Type:     "bp",
					Severity: SeverityInfo,
					Title:    "Systolic rising",
					Detail:   fmt.Sprintf("Latest systolic is %.0f mmHg, ~%.0f above your recent average.", *sys, diff),
					Date:     date,
				})
			}
		}

		baselineDia := baselineMean(bpRows, latest.MeasuredAt, payloadDiastolic)
		if dia != nil && baselineDia != nil && *dia-*baselineDia >= diastolicSpikeWarning {
			anomalies = append(anomalies, Anomaly{
				Type:     "bp",
				Severity: SeverityWarning,
				Title:    "Diastolic spike",
				Detail:   fmt.Sprintf("Latest diastolic is %.0f mmHg, ~%.0f above your recent average.", *dia, *dia-*baselineDia),
				Date:     date,
			})
		}
	}

	wtRows := sortedDesc(measurements, schema.MeasurementWeight)
	if len(wtRows) > 0 && wtRows[0].Payload.Kg != nil {
		latest := wtRows[0]
		cutoff := latest.MeasuredAt.Add(-weightJumpWindow)
		baseline := baselineMean(wtRows, cutoff, payloadKg)
		if baseline != nil && *baseline > 0 {
			change := (*latest.Payload.Kg - *baseline) / *baseline * 100
			if math.Abs(change) > weightJumpPercent {
				direction := "gain"
				if change < 0 {
					direction = "loss"
				}
				anomalies = append(anomalies, Anomaly{
					Type:     "weight",
					Severity: SeverityWarning,
					Title:    fmt.Sprintf("Rapid weight %s", direction),
					Detail:   fmt.Sprintf("Weight changed %.1f%% within 48 hours (%.1f kg vs %.1f kg baseline).", change, *latest.Payload.Kg, *baseline),
					Date:     utils.DayKey(latest.MeasuredAt, loc),
				})
			}
		}
	}

	return anomalies
}

func formatBP(sys, dia *float64) string {
	s, d := "?", "?"
	if sys != nil {
		s = fmt.Sprintf("%.0f", *sys)
	}
	if dia != nil {
		d = fmt.Sprintf("%.0f", *dia)
	}
	return s + "/" + d
}
