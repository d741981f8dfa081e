package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

type WeeklyStore interface {
	SaveWeeklySummary(summary schema.WeeklyRiskSummary) error
	GetWeeklySummary(accountNumber, weekStart string) (*schema.WeeklyRiskSummary, error)
	SaveCarePlan(plan schema.CarePlan) error
	GetCarePlan(accountNumber, weekStart string) (*schema.CarePlan, error)
}

func (m *mongoDB) SaveWeeklySummary(summary schema.WeeklyRiskSummary) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{"user_id": summary.UserID, "week_start": summary.WeekStart}

	_, err := c.Collection(schema.WeeklyRiskSummaryCollection).
		ReplaceOne(ctx, query, &summary, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoDB) GetWeeklySummary(accountNumber, weekStart string) (*schema.WeeklyRiskSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	var row schema.WeeklyRiskSummary
	err := c.Collection(schema.WeeklyRiskSummaryCollection).
		FindOne(ctx, bson.M{"user_id": accountNumber, "week_start": weekStart}).
		Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

func (m *mongoDB) SaveCarePlan(plan schema.CarePlan) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := bson.M{"user_id": plan.UserID, "week_start": plan.WeekStart}

	_, err := c.Collection(schema.CarePlanCollection).
		ReplaceOne(ctx, query, &plan, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoDB) GetCarePlan(accountNumber, weekStart string) (*schema.CarePlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	var row schema.CarePlan
	err := c.Collection(schema.CarePlanCollection).
		FindOne(ctx, bson.M{"user_id": accountNumber, "week_start": weekStart}).
		Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}
