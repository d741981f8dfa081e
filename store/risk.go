package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

type RiskStore interface {
	SaveRiskRecord(record schema.RiskRecord) error
	GetRiskRecord(accountNumber, date string) (*schema.RiskRecord, error)
	ListRiskRecords(accountNumber, fromDay, toDay string) ([]schema.RiskRecord, error)
}

// SaveRiskRecord replaces the risk record of a user and day. One record per
// day; recomputation overwrites.
func (m *mongoDB) SaveRiskRecord(record schema.RiskRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{"user_id": record.UserID, "as_of_date": record.AsOfDate}

	_, err := c.Collection(schema.RiskRecordCollection).
		ReplaceOne(ctx, query, &record, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoDB) GetRiskRecord(accountNumber, date string) (*schema.RiskRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	var row schema.RiskRecord
	err := c.Collection(schema.RiskRecordCollection).
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

// ListRiskRecords returns the records of [fromDay, toDay], ascending by day.
func (m *mongoDB) ListRiskRecords(accountNumber, fromDay, toDay string) ([]schema.RiskRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{
		"user_id":    accountNumber,
		"as_of_date": bson.M{"$gte": fromDay, "$lte": toDay},
	}

	cursor, err := c.Collection(schema.RiskRecordCollection).Find(ctx, query,
		options.Find().SetSort(bson.M{"as_of_date": 1}))
	if err != nil {
		return nil, err
	}

	records := make([]schema.RiskRecord, 0)
	for cursor.Next(ctx) {
		var row schema.RiskRecord
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		records = append(records, row)
	}

	return records, nil
}
