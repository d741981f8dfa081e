package score

import (
	"math"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

const (
	// DefaultQualityWindowDays is the logging window the quality score is
	// measured over.
	DefaultQualityWindowDays = 7

	vitalsWeight   = 50.0
	symptomsWeight = 25.0
	medsWeight     = 25.0
)

// ComputeDataQuality scores logging completeness: days with at least one
// vitals reading weigh 50%, symptom check-ins and medication logs 25% each.
// Logging every day yields 100, logging nothing 0.
func ComputeDataQuality(vitalsDays, symptomDays, medsDays, windowDays int) schema.DataQualityResult {
	if windowDays <= 0 {
		windowDays = DefaultQualityWindowDays
	}

	window := float64(windowDays)
	vitals := float64(vitalsDays) / window * vitalsWeight
	symptoms := float64(symptomDays) / window * symptomsWeight
	meds := float64(medsDays) / window * medsWeight

	total := int(Clamp(math.Round(vitals+symptoms+meds), 0, 100))

	var summary string
	switch {
	case total >= 80:
		summary = "Great logging consistency this week."
	case total >= 60:
		summary = "Logging is decent. Add a few more check-ins for better insights."
	default:
		summary = "Limited data. Log vitals and symptoms more consistently."
	}

	return schema.DataQualityResult{
		Score: total,
		Breakdown: schema.DataQualityBreakdown{
			Vitals:   int(math.Round(vitals)),
			Symptoms: int(math.Round(symptoms)),
			Meds:     int(math.Round(meds)),
		},
		Days: schema.DataQualityDays{
			Vitals:   vitalsDays,
			Symptoms: symptomDays,
			Meds:     medsDays,
		},
		WindowDays: windowDays,
		Summary:    summary,
	}
}
