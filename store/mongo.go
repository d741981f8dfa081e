package store

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	// DuplicateKeyCode mongo error code of insert a duplicate key
	DuplicateKeyCode = 11000
)

// ErrNoRecord - the queried record does not exist
var ErrNoRecord = errors.New("record not found")

// MongoStore - interface for mongodb operations
type MongoStore interface {
	MeasurementStore
	SymptomStore
	AdherenceStore
	FeatureStore
	RiskStore
	NudgeStore
	WeeklyStore
	Closer
	Pinger

	PurgeAccount(accountNumber string) error
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// PurgeAccount deletes every document a user has in any collection. Used when
// an account is removed.
func (m *mongoDB) PurgeAccount(accountNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	collections := []string{
		schema.MeasurementCollection,
		schema.SymptomCheckinCollection,
		schema.MedicationAdherenceCollection,
		schema.FeatureSnapshotCollection,
		schema.RiskRecordCollection,
		schema.DailyNudgeCollection,
		schema.WeeklyRiskSummaryCollection,
		schema.CarePlanCollection,
	}

	for _, collection := range collections {
		if _, err := c.Collection(collection).DeleteMany(ctx, bson.M{"user_id": accountNumber}); err != nil {
			return err
		}
	}

	return nil
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
