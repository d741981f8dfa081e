package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

type NudgeStore interface {
	SaveDailyNudge(nudge schema.DailyNudge) error
	GetDailyNudge(accountNumber, date string) (*schema.DailyNudge, error)
	UpdateDailyNudgeStatus(accountNumber, date string, status schema.NudgeStatus) error
}

func (m *mongoDB) SaveDailyNudge(nudge schema.DailyNudge) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{"user_id": nudge.UserID, "as_of_date": nudge.AsOfDate}

	_, err := c.Collection(schema.DailyNudgeCollection).
		ReplaceOne(ctx, query, &nudge, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoDB) GetDailyNudge(accountNumber, date string) (*schema.DailyNudge, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	var row schema.DailyNudge
	err := c.Collection(schema.DailyNudgeCollection).
		FindOne(ctx, bson.M{"user_id": accountNumber, "as_of_date": date}).
		Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// UpdateDailyNudgeStatus marks the day's nudge done or snoozed. It returns
// ErrNoRecord when the day has no nudge yet.
func (m *mongoDB) UpdateDailyNudgeStatus(accountNumber, date string, status schema.NudgeStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{"user_id": accountNumber, "as_of_date": date}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := c.Collection(schema.DailyNudgeCollection).UpdateOne(ctx, query, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNoRecord
	}

	return nil
}
