package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

type AdherenceStore interface {
	UpsertAdherence(record schema.MedicationAdherence) error
	ListAdherence(accountNumber, fromDay, toDay string) ([]schema.MedicationAdherence, error)
}

// UpsertAdherence records a taken or missed dose. Re-logging the same
// medication and day replaces the earlier status, a correction rather than a
// second record.
func (m *mongoDB) UpsertAdherence(record schema.MedicationAdherence) error {
	if record.Status != schema.AdherenceTaken && record.Status != schema.AdherenceMissed {
		return errors.New("adherence status must be taken or missed")
	}
	if record.MedicationID == "" {
		return errors.New("empty medication id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{
		"user_id":       record.UserID,
		"medication_id": record.MedicationID,
		"date":          record.Date,
	}

	_, err := c.Collection(schema.MedicationAdherenceCollection).
		ReplaceOne(ctx, query, &record, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoDB) ListAdherence(accountNumber, fromDay, toDay string) ([]schema.MedicationAdherence, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{
		"user_id": accountNumber,
		"date":    bson.M{"$gte": fromDay, "$lte": toDay},
	}

	cursor, err := c.Collection(schema.MedicationAdherenceCollection).Find(ctx, query,
		options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}

	records := make([]schema.MedicationAdherence, 0)
	for cursor.Next(ctx) {
		var row schema.MedicationAdherence
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		records = append(records, row)
	}

	return records, nil
}
