package schema

import "time"

const (
	RiskRecordCollection = "riskRecord"

	RiskModelRules       = "rules_v1"
	RiskModelUnavailable = "risk_unavailable"
)

type RiskBand string

const (
	BandGreen   RiskBand = "green"
	BandAmber   RiskBand = "amber"
	BandRed     RiskBand = "red"
	BandUnknown RiskBand = "unknown"
)

type DriverDirection string

const (
	DriverUp   DriverDirection = "up"
	DriverDown DriverDirection = "down"
)

// Driver is a named feature with a signed contribution explaining part of a
// risk score. Drivers are ordered by descending absolute contribution.
type Driver struct {
	Name         string          `json:"name" bson:"name"`
	Value        float64         `json:"value" bson:"value"`
	Direction    DriverDirection `json:"direction" bson:"direction"`
	Contribution float64         `json:"contribution" bson:"contribution"`
}

// RiskRecord is the daily risk estimate for one (user, date). A nil Risk
// means the score could not be computed and the band is "unknown". The record
// is overwritten on recompute, never duplicated.
type RiskRecord struct {
	UserID       string    `json:"user_id" bson:"user_id"`
	AsOfDate     string    `json:"as_of_date" bson:"as_of_date"`
	Risk         *float64  `json:"risk" bson:"risk,omitempty"`
	Band         RiskBand  `json:"band" bson:"band"`
	Drivers      []Driver  `json:"drivers" bson:"drivers"`
	ModelVersion string    `json:"model_version" bson:"model_version"`
	ComputedAt   time.Time `json:"computed_at" bson:"computed_at"`
}
