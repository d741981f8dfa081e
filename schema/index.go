package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexMeasurementCollection())
	panicIfError(m.IndexSymptomCheckinCollection())
	panicIfError(m.IndexAdherenceCollection())
	panicIfError(m.IndexFeatureSnapshotCollection())
	panicIfError(m.IndexRiskRecordCollection())
	panicIfError(m.IndexDailyNudgeCollection())
	panicIfError(m.IndexWeeklySummaryCollection())
	panicIfError(m.IndexCarePlanCollection())
}

func (m *MongoDBIndexer) IndexMeasurementCollection() error {
	return m.createIndex(MeasurementCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "type", Value: 1},
			{Key: "measured_at", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexSymptomCheckinCollection() error {
	return m.createIndex(SymptomCheckinCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "checked_at", Value: 1},
		},
	})
}

// IndexAdherenceCollection enforces one record per (user, medication, day).
func (m *MongoDBIndexer) IndexAdherenceCollection() error {
	return m.createIndex(MedicationAdherenceCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "medication_id", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexFeatureSnapshotCollection() error {
	return m.createIndex(FeatureSnapshotCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

// IndexRiskRecordCollection enforces the unique (user, as_of_date) natural
// key so recomputation overwrites instead of duplicating.
func (m *MongoDBIndexer) IndexRiskRecordCollection() error {
	return m.createIndex(RiskRecordCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "as_of_date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexDailyNudgeCollection() error {
	return m.createIndex(DailyNudgeCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "as_of_date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexWeeklySummaryCollection() error {
	return m.createIndex(WeeklyRiskSummaryCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "week_start", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexCarePlanCollection() error {
	return m.createIndex(CarePlanCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "week_start", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}
