package score

import (
	"sort"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

const (
	// riskBaseline is the score of an all-neutral snapshot; contributions
	// shift the score around it.
	riskBaseline = 0.30

	// maxContribution bounds every per-feature contribution to ±0.20.
	maxContribution = 0.20

	bandGreenUpper = 0.33
	bandAmberUpper = 0.66
)

// riskRule maps one feature through a fixed monotone function into a bounded
// contribution. Rules are evaluated in declaration order; that order breaks
// ties when contributions are equal in magnitude.
type riskRule struct {
	name         string
	value        func(f schema.Features) *float64
	contribution func(v float64) float64
}

var riskRules = []riskRule{
	{
		name:         schema.FeatureBPSysAvg7d,
		value:        func(f schema.Features) *float64 { return f.BPSysAvg7d },
		contribution: func(v float64) float64 { return (v - 120) / 150 },
	},
	{
		name:         schema.FeatureBPSysSlope14d,
		value:        func(f schema.Features) *float64 { return f.BPSysSlope14d },
		contribution: func(v float64) float64 { return v / 2.5 },
	},
	{
		name:         schema.FeatureBPDiaAvg7d,
		value:        func(f schema.Features) *float64 { return f.BPDiaAvg7d },
		contribution: func(v float64) float64 { return (v - 80) / 200 },
	},
	{
		name:         schema.FeatureWeightSlope14d,
		value:        func(f schema.Features) *float64 { return f.WeightSlope14d },
		contribution: func(v float64) float64 { return v / 0.5 },
	},
	{
		name:         schema.FeatureSleepDebtH,
		value:        func(f schema.Features) *float64 { return f.SleepDebtH },
		contribution: func(v float64) float64 { return v / 15 },
	},
	{
		name:         schema.FeatureStepsAvg7d,
		value:        func(f schema.Features) *float64 { return f.StepsAvg7d },
		contribution: func(v float64) float64 { return (6000 - v) / 40000 },
	},
	{
		name:         schema.FeatureHRVAvg7d,
		value:        func(f schema.Features) *float64 { return f.HRVAvg7d },
		contribution: func(v float64) float64 { return (55 - v) / 250 },
	},
}

// BandForScore maps a score to its band. A nil score is "unknown".
func BandForScore(score *float64) schema.RiskBand {
	if score == nil {
		return schema.BandUnknown
	}
	switch {
	case *score < bandGreenUpper:
		return schema.BandGreen
	case *score < bandAmberUpper:
		return schema.BandAmber
	default:
		return schema.BandRed
	}
}

// ComputeRisk maps a feature snapshot to a bounded risk score with ranked
// drivers. Features without a value contribute nothing and never appear as
// drivers. A snapshot with no features at all yields a nil score, the
// "unknown" band and the risk_unavailable model version.
func ComputeRisk(snapshot schema.FeatureSnapshot) schema.RiskRecord {
	record := schema.RiskRecord{
		UserID:   snapshot.UserID,
		AsOfDate: snapshot.Date,
		Drivers:  []schema.Driver{},
	}

	if snapshot.Features.Empty() {
		record.Band = schema.BandUnknown
		record.ModelVersion = schema.RiskModelUnavailable
		return record
	}

	total := riskBaseline
	drivers := make([]schema.Driver, 0, len(riskRules))
	for _, rule := range riskRules {
		v := rule.value(snapshot.Features)
		if v == nil {
			continue
		}
		c := Clamp(rule.contribution(*v), -maxContribution, maxContribution)
		total += c

		direction := schema.DriverUp
		if c < 0 {
			direction = schema.DriverDown
		}
		drivers = append(drivers, schema.Driver{
			Name:         rule.name,
			Value:        *v,
			Direction:    direction,
			Contribution: c,
		})
	}

	// rank by absolute contribution; stable sort keeps rule order on ties
	sort.SliceStable(drivers, func(i, j int) bool {
		ai, aj := drivers[i].Contribution, drivers[j].Contribution
		if ai < 0 {
			ai = -ai
		}
		if aj < 0 {
			aj = -aj
		}
		return ai > aj
	})

	risk := Clamp(total, 0, 1)
	record.Risk = &risk
	record.Band = BandForScore(&risk)
	record.Drivers = drivers
	record.ModelVersion = schema.RiskModelRules
	return record
}
