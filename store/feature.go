package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

type FeatureStore interface {
	SaveFeatureSnapshot(snapshot schema.FeatureSnapshot) error
	GetFeatureSnapshot(accountNumber, date string) (*schema.FeatureSnapshot, error)
}

// SaveFeatureSnapshot replaces the snapshot of a user and day. Recomputing a
// day is idempotent.
func (m *mongoDB) SaveFeatureSnapshot(snapshot schema.FeatureSnapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{"user_id": snapshot.UserID, "date": snapshot.Date}

	_, err := c.Collection(schema.FeatureSnapshotCollection).
		ReplaceOne(ctx, query, &snapshot, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoDB) GetFeatureSnapshot(accountNumber, date string) (*schema.FeatureSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	var row schema.FeatureSnapshot
	err := c.Collection(schema.FeatureSnapshotCollection).
		FindOne(ctx, bson.M{"user_id": accountNumber, "date": date}).
		Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}
