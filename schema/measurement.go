package schema

import (
	"fmt"
	"time"
)

const (
	MeasurementCollection = "measurement"

	DefaultMeasurementSource = "manual"
)

type MeasurementType string

const (
	MeasurementBloodPressure MeasurementType = "bp"
	MeasurementWeight        MeasurementType = "weight"
	MeasurementSteps         MeasurementType = "steps"
	MeasurementSleep         MeasurementType = "sleep"
	MeasurementHRV           MeasurementType = "hrv"
	MeasurementA1C           MeasurementType = "a1c"
	MeasurementLipid         MeasurementType = "lipid"
)

// MeasurementTypes lists every supported measurement type.
var MeasurementTypes = []MeasurementType{
	MeasurementBloodPressure,
	MeasurementWeight,
	MeasurementSteps,
	MeasurementSleep,
	MeasurementHRV,
	MeasurementA1C,
	MeasurementLipid,
}

// MeasurementPayload is the variant payload of a measurement. The set of
// populated fields is determined by the measurement type and is checked by
// Validate before a record enters the store.
type MeasurementPayload struct {
	Systolic      *float64 `json:"systolic,omitempty" bson:"systolic,omitempty"`
	Diastolic     *float64 `json:"diastolic,omitempty" bson:"diastolic,omitempty"`
	Pulse         *float64 `json:"pulse,omitempty" bson:"pulse,omitempty"`
	Kg            *float64 `json:"kg,omitempty" bson:"kg,omitempty"`
	Count         *float64 `json:"count,omitempty" bson:"count,omitempty"`
	Hours         *float64 `json:"hours,omitempty" bson:"hours,omitempty"`
	Efficiency    *float64 `json:"efficiency,omitempty" bson:"efficiency,omitempty"`
	RMSSD         *float64 `json:"rmssd,omitempty" bson:"rmssd,omitempty"`
	Percent       *float64 `json:"percent,omitempty" bson:"percent,omitempty"`
	Total         *float64 `json:"total,omitempty" bson:"total,omitempty"`
	LDL           *float64 `json:"ldl,omitempty" bson:"ldl,omitempty"`
	HDL           *float64 `json:"hdl,omitempty" bson:"hdl,omitempty"`
	Triglycerides *float64 `json:"triglycerides,omitempty" bson:"triglycerides,omitempty"`
}

// Measurement is a single raw reading. Records are append-only and never
// mutated after they are written.
type Measurement struct {
	ID         string             `json:"id" bson:"id"`
	UserID     string             `json:"user_id" bson:"user_id"`
	Type       MeasurementType    `json:"type" bson:"type"`
	MeasuredAt time.Time          `json:"measured_at" bson:"measured_at"`
	Source     string             `json:"source" bson:"source"`
	Payload    MeasurementPayload `json:"payload" bson:"payload"`
}

func requireRange(name string, v *float64, min, max float64) error {
	if v == nil {
		return fmt.Errorf("missing payload field %q", name)
	}
	if *v < min || *v > max {
		return fmt.Errorf("payload field %q out of range [%g, %g]: %g", name, min, max, *v)
	}
	return nil
}

// Validate checks that the payload carries the fields required by the
// measurement type and that every value is inside its physiological range.
// Records failing validation never reach the derivation pipeline.
func (m Measurement) Validate() error {
	p := m.Payload
	switch m.Type {
	case MeasurementBloodPressure:
		if err := requireRange("systolic", p.Systolic, 50, 300); err != nil {
			return err
		}
		if err := requireRange("diastolic", p.Diastolic, 30, 200); err != nil {
			return err
		}
		if p.Pulse != nil {
			return requireRange("pulse", p.Pulse, 20, 250)
		}
		return nil
	case MeasurementWeight:
		return requireRange("kg", p.Kg, 20, 400)
	case MeasurementSteps:
		return requireRange("count", p.Count, 0, 200000)
	case MeasurementSleep:
		if err := requireRange("hours", p.Hours, 0, 24); err != nil {
			return err
		}
		if p.Efficiency != nil {
			return requireRange("efficiency", p.Efficiency, 0, 100)
		}
		return nil
	case MeasurementHRV:
		return requireRange("rmssd", p.RMSSD, 0, 300)
	case MeasurementA1C:
		return requireRange("percent", p.Percent, 3, 20)
	case MeasurementLipid:
		if err := requireRange("total", p.Total, 50, 600); err != nil {
			return err
		}
		if err := requireRange("ldl", p.LDL, 10, 400); err != nil {
			return err
		}
		if err := requireRange("hdl", p.HDL, 10, 150); err != nil {
			return err
		}
		return requireRange("triglycerides", p.Triglycerides, 10, 2000)
	default:
		return fmt.Errorf("unknown measurement type %q", m.Type)
	}
}
