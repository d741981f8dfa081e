package store

import (
	"github.com/cardiometrix/cardiometrix-api/schema"
)

// CreateAccount is to register an account into the cardiometrix system
func (s *CardioStore) CreateAccount(accountNumber string, metadata map[string]interface{}) (*schema.Account, error) {
	a := schema.Account{
		AccountNumber: accountNumber,
		Profile: schema.AccountProfile{
			AccountNumber: accountNumber,
			Metadata:      schema.AccountMetadata(metadata),
		},
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *CardioStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAccountMetadata is to update metadata for a specific account
func (s *CardioStore) UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	if a.Profile.Metadata == nil {
		a.Profile.Metadata = schema.AccountMetadata{}
	}
	for k, v := range metadata {
		a.Profile.Metadata[k] = v
	}

	return s.ormDB.Save(&a.Profile).Error
}

// UpdateAccountProfile applies the non-nil fields of the update to a user's
// profile. Timezone is validated upstream; an unknown zone never reaches here.
func (s *CardioStore) UpdateAccountProfile(accountNumber string, update AccountProfileUpdate) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	if update.Timezone != nil {
		a.Profile.Timezone = *update.Timezone
	}
	if update.Sex != nil {
		a.Profile.Sex = *update.Sex
	}
	if update.DateOfBirth != nil {
		a.Profile.DateOfBirth = update.DateOfBirth
	}
	if update.HeightCM != nil {
		a.Profile.HeightCM = update.HeightCM
	}

	return s.ormDB.Save(&a.Profile).Error
}

// ListAccountNumbers returns every registered account number. The daily batch
// iterates this list.
func (s *CardioStore) ListAccountNumbers() ([]string, error) {
	numbers := []string{}
	if err := s.ormDB.Model(&schema.Account{}).Order("account_number").
		Pluck("account_number", &numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}

// DeleteAccount removes an account from our system permanently
func (s *CardioStore) DeleteAccount(accountNumber string) error {
	if err := s.ormDB.Delete(schema.Account{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	if err := s.ormDB.Delete(schema.AccountProfile{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	return s.mongo.PurgeAccount(accountNumber)
}
