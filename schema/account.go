package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type AccountMetadata map[string]interface{}

func (u AccountMetadata) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *AccountMetadata) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}

	return json.Unmarshal(source, &u)
}

// Account is a registered user of the cardiometric pipeline.
type Account struct {
	AccountNumber string         `json:"account_number" gorm:"primary_key"`
	Profile       AccountProfile `json:"profile" gorm:"foreignkey:ProfileID"`
	ProfileID     uuid.UUID      `json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// AccountProfile carries the per-user settings the pipeline needs: the
// timezone every calendar day is resolved in, and the demographics the cohort
// comparison benchmarks against.
type AccountProfile struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountNumber string          `json:"account_number"`
	Timezone      string          `json:"timezone"`
	Sex           string          `json:"sex"`
	DateOfBirth   *time.Time      `json:"date_of_birth"`
	HeightCM      *float64        `json:"height_cm"`
	Metadata      AccountMetadata `json:"metadata" gorm:"type:jsonb;not null;default '{}'"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
