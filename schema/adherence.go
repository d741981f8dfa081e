package schema

const MedicationAdherenceCollection = "medicationAdherence"

type AdherenceStatus string

const (
	AdherenceTaken  AdherenceStatus = "taken"
	AdherenceMissed AdherenceStatus = "missed"
)

// MedicationAdherence records whether a medication was taken on a calendar
// day. There is one record per (user, medication, day); it is upserted and
// stays mutable until the day closes.
type MedicationAdherence struct {
	UserID       string          `json:"user_id" bson:"user_id"`
	MedicationID string          `json:"medication_id" bson:"medication_id"`
	Date         string          `json:"date" bson:"date"`
	Status       AdherenceStatus `json:"status" bson:"status"`
}
