package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

type RiskTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewRiskTestSuite(connURI, dbName string) *RiskTestSuite {
	return &RiskTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *RiskTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *RiskTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *RiskTestSuite) TestSaveRiskRecordOverwritesSameDay() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	risk := 0.42
	record := schema.RiskRecord{
		UserID:       "userA",
		AsOfDate:     "2026-02-27",
		Risk:         &risk,
		Band:         schema.BandAmber,
		ModelVersion: schema.RiskModelRules,
		ComputedAt:   time.Now().UTC(),
	}
	assert.NoError(s.T(), store.SaveRiskRecord(record))

	risk = 0.55
	record.Risk = &risk
	assert.NoError(s.T(), store.SaveRiskRecord(record))

	got, err := store.GetRiskRecord("userA", "2026-02-27")
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), got)
	assert.Equal(s.T(), 0.55, *got.Risk)

	records, err := store.ListRiskRecords("userA", "2026-02-01", "2026-02-28")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), records, 1)
}

func (s *RiskTestSuite) TestListRiskRecordsRange() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	for _, day := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		risk := 0.3
		assert.NoError(s.T(), store.SaveRiskRecord(schema.RiskRecord{
			UserID:       "userB",
			AsOfDate:     day,
			Risk:         &risk,
			Band:         schema.BandGreen,
			ModelVersion: schema.RiskModelRules,
		}))
	}

	records, err := store.ListRiskRecords("userB", "2026-03-01", "2026-03-02")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), records, 2)
	assert.Equal(s.T(), "2026-03-01", records[0].AsOfDate)
	assert.Equal(s.T(), "2026-03-02", records[1].AsOfDate)
}

func (s *RiskTestSuite) TestGetRiskRecordMissing() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	got, err := store.GetRiskRecord("nobody", "2026-02-27")
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *RiskTestSuite) TestUpdateDailyNudgeStatus() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	assert.Equal(s.T(), ErrNoRecord, store.UpdateDailyNudgeStatus("userC", "2026-02-27", schema.NudgeDone))

	assert.NoError(s.T(), store.SaveDailyNudge(schema.DailyNudge{
		UserID:   "userC",
		AsOfDate: "2026-02-27",
		Key:      "move_walk_10",
		Tag:      schema.NudgeMovement,
		Status:   schema.NudgePending,
	}))

	assert.NoError(s.T(), store.UpdateDailyNudgeStatus("userC", "2026-02-27", schema.NudgeDone))

	got, err := store.GetDailyNudge("userC", "2026-02-27")
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), got)
	assert.Equal(s.T(), schema.NudgeDone, got.Status)
}

func TestRiskTestSuite(t *testing.T) {
	suite.Run(t, NewRiskTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
