package score

import (
	"sort"
	"time"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/utils"
)

// SeriesPoint is one calendar day of a daily series.
type SeriesPoint struct {
	Date  string
	Value float64
}

// Mean returns the arithmetic mean of the samples, or nil for an empty
// window. Missing days contribute nothing, never zero.
func Mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}

// OLSSlope fits an ordinary least-squares line through (day-offset, value)
// pairs and returns the slope per day. Fewer than two points, or points all
// on the same day, yield nil.
func OLSSlope(series []SeriesPoint) *float64 {
	if len(series) < 2 {
		return nil
	}

	base := series[0].Date
	var sumX, sumY float64
	xs := make([]float64, len(series))
	for i, p := range series {
		xs[i] = float64(utils.DayOffset(base, p.Date))
		sumX += xs[i]
		sumY += p.Value
	}
	meanX := sumX / float64(len(series))
	meanY := sumY / float64(len(series))

	var num, den float64
	for i, p := range series {
		num += (xs[i] - meanX) * (p.Value - meanY)
		den += (xs[i] - meanX) * (xs[i] - meanX)
	}
	if den == 0 {
		return nil
	}
	slope := num / den
	return &slope
}

// Clamp bounds v into [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Float64 is a literal-pointer helper for optional values.
func Float64(v float64) *float64 {
	return &v
}

// DailySeries buckets measurements into calendar days in the given location,
// averages multiple same-day readings, and returns the series sorted by date
// ascending. Measurements whose extractor returns nil are skipped.
func DailySeries(measurements []schema.Measurement, loc *time.Location, value func(schema.MeasurementPayload) *float64) []SeriesPoint {
	byDay := map[string][]float64{}
	for _, m := range measurements {
		v := value(m.Payload)
		if v == nil {
			continue
		}
		day := utils.DayKey(m.MeasuredAt, loc)
		byDay[day] = append(byDay[day], *v)
	}

	series := make([]SeriesPoint, 0, len(byDay))
	for day, values := range byDay {
		series = append(series, SeriesPoint{Date: day, Value: *Mean(values)})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

// WindowValues returns the values of a series restricted to [from, to],
// bounds inclusive.
func WindowValues(series []SeriesPoint, from, to string) []float64 {
	values := make([]float64, 0, len(series))
	for _, p := range series {
		if p.Date >= from && p.Date <= to {
			values = append(values, p.Value)
		}
	}
	return values
}

// WindowSeries restricts a series to [from, to], bounds inclusive.
func WindowSeries(series []SeriesPoint, from, to string) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(series))
	for _, p := range series {
		if p.Date >= from && p.Date <= to {
			out = append(out, p)
		}
	}
	return out
}
