package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

// cardiometrix main datastore
type CardioCore interface {
	Ping() error

	// Account
	CreateAccount(accountNumber string, metadata map[string]interface{}) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error
	UpdateAccountProfile(accountNumber string, update AccountProfileUpdate) error
	ListAccountNumbers() ([]string, error)
	DeleteAccount(accountNumber string) error
}

// AccountProfileUpdate carries the profile fields a user may change. Nil
// fields are left untouched.
type AccountProfileUpdate struct {
	Timezone    *string
	Sex         *string
	DateOfBirth *time.Time
	HeightCM    *float64
}

// CardioStore is an implementation of CardioCore
type CardioStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewCardioStore(ormDB *gorm.DB, mongo MongoStore) *CardioStore {
	return &CardioStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *CardioStore) Ping() error {
	return s.ormDB.DB().Ping()
}
