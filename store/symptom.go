package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

type SymptomStore interface {
	CreateSymptomCheckin(checkin schema.SymptomCheckin) (string, error)
	ListSymptomCheckins(accountNumber string, from, to time.Time) ([]schema.SymptomCheckin, error)
}

func (m *mongoDB) CreateSymptomCheckin(checkin schema.SymptomCheckin) (string, error) {
	if checkin.Severity < 0 || checkin.Severity > 10 {
		return "", errors.New("severity out of range 0-10")
	}
	if checkin.CheckedAt.IsZero() {
		checkin.CheckedAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	checkin.ID = uuid.New().String()

	if _, err := c.Collection(schema.SymptomCheckinCollection).InsertOne(ctx, &checkin); err != nil {
		return "", err
	}

	return checkin.ID, nil
}

func (m *mongoDB) ListSymptomCheckins(accountNumber string, from, to time.Time) ([]schema.SymptomCheckin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{
		"user_id":    accountNumber,
		"checked_at": bson.M{"$gte": from, "$lt": to},
	}

	cursor, err := c.Collection(schema.SymptomCheckinCollection).Find(ctx, query,
		options.Find().SetSort(bson.M{"checked_at": 1}))
	if err != nil {
		return nil, err
	}

	checkins := make([]schema.SymptomCheckin, 0)
	for cursor.Next(ctx) {
		var row schema.SymptomCheckin
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		checkins = append(checkins, row)
	}

	return checkins, nil
}
