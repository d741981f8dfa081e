package schema

import "time"

const SymptomCheckinCollection = "symptomCheckin"

// SymptomCheckin is a self-reported symptom record. Immutable once written.
type SymptomCheckin struct {
	ID        string          `json:"id" bson:"id"`
	UserID    string          `json:"user_id" bson:"user_id"`
	CheckedAt time.Time       `json:"checked_at" bson:"checked_at"`
	Severity  int             `json:"severity" bson:"severity"`
	Symptoms  map[string]bool `json:"symptoms" bson:"symptoms"`
	Other     string          `json:"other,omitempty" bson:"other,omitempty"`
	Notes     string          `json:"notes,omitempty" bson:"notes,omitempty"`
}
