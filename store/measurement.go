package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

type MeasurementStore interface {
	CreateMeasurement(m schema.Measurement) (string, error)
	ListMeasurements(accountNumber string, t schema.MeasurementType, from, to time.Time) ([]schema.Measurement, error)
	LatestMeasurement(accountNumber string, t schema.MeasurementType) (*schema.Measurement, error)
}

// CreateMeasurement saves a validated vital reading and returns its id.
func (m *mongoDB) CreateMeasurement(measurement schema.Measurement) (string, error) {
	if err := measurement.Validate(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	measurement.ID = uuid.New().String()
	if measurement.Source == "" {
		measurement.Source = schema.DefaultMeasurementSource
	}

	if _, err := c.Collection(schema.MeasurementCollection).InsertOne(ctx, &measurement); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("insert measurement")
		return "", err
	}

	return measurement.ID, nil
}

// ListMeasurements returns readings in [from, to), ascending by time. An empty
// type matches every type.
func (m *mongoDB) ListMeasurements(accountNumber string, t schema.MeasurementType, from, to time.Time) ([]schema.Measurement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{
		"user_id":     accountNumber,
		"measured_at": bson.M{"$gte": from, "$lt": to},
	}
	if t != "" {
		query["type"] = t
	}

	cursor, err := c.Collection(schema.MeasurementCollection).Find(ctx, query,
		options.Find().SetSort(bson.M{"measured_at": 1}))
	if err != nil {
		return nil, err
	}

	measurements := make([]schema.Measurement, 0)
	for cursor.Next(ctx) {
		var row schema.Measurement
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		measurements = append(measurements, row)
	}

	return measurements, nil
}

// LatestMeasurement returns the newest reading of a type, or nil when the
// user has none.
func (m *mongoDB) LatestMeasurement(accountNumber string, t schema.MeasurementType) (*schema.Measurement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{"user_id": accountNumber, "type": t}

	var row schema.Measurement
	err := c.Collection(schema.MeasurementCollection).
		FindOne(ctx, query, options.FindOne().SetSort(bson.M{"measured_at": -1})).
		Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}
