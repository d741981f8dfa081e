package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/cardiometrix/cardiometrix-api/mocks"
	"github.com/cardiometrix/cardiometrix-api/schema"
)

func TestCreateMeasurement(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCardioCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)

	var saved schema.Measurement
	m.EXPECT().CreateMeasurement(gomock.Any()).DoAndReturn(func(row schema.Measurement) (string, error) {
		saved = row
		return "id-1", nil
	}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.requesterMiddleware())
	router.POST("/", s.createMeasurement)

	body := `{"type":"bp","measured_at":"2026-02-28T09:00:00Z","payload":{"systolic":121,"diastolic":79,"pulse":66}}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Requester", "u1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]string
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "id-1", jResp["id"], "wrong measurement id")

	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, schema.MeasurementBloodPressure, saved.Type)
	assert.Equal(t, 121.0, *saved.Payload.Systolic)
}

func TestCreateMeasurementRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCardioCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)

	m.EXPECT().CreateMeasurement(gomock.Any()).Return("", errors.New("bp measurement requires systolic")).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.requesterMiddleware())
	router.POST("/", s.createMeasurement)

	body := `{"type":"bp","payload":{"diastolic":79}}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Requester", "u1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorInvalidMeasurement.Code, jResp.Code, "wrong error code")
}

func TestUpsertAdherenceBadStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCardioCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)

	a.EXPECT().GetAccount("u1").Return(&schema.Account{
		AccountNumber: "u1",
		Profile:       schema.AccountProfile{AccountNumber: "u1"},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.requesterMiddleware())
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.upsertAdherence)

	body := `{"medication_id":"med-1","date":"2026-02-28","status":"skipped"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Requester", "u1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorInvalidAdherence.Code, jResp.Code, "wrong error code")
}
