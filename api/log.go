package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/utils"
)

const defaultListWindowDays = 14

// createMeasurement ingests one vital reading. The payload shape must match
// the declared type; ranges are checked before anything is stored.
func (s *Server) createMeasurement(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Type       schema.MeasurementType    `json:"type"`
		MeasuredAt time.Time                 `json:"measured_at"`
		Source     string                    `json:"source"`
		Payload    schema.MeasurementPayload `json:"payload"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.MeasuredAt.IsZero() {
		params.MeasuredAt = time.Now().UTC()
	}

	id, err := s.mongoStore.CreateMeasurement(schema.Measurement{
		UserID:     accountNumber,
		Type:       params.Type,
		MeasuredAt: params.MeasuredAt,
		Source:     params.Source,
		Payload:    params.Payload,
	})
	if err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidMeasurement)
		return
	}

	s.triggerRiskUpdate(accountNumber)

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// listMeasurements returns the requester's recent readings. Optional query
// params: type, days (default 14).
func (s *Server) listMeasurements(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	days := defaultListWindowDays
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		days = parsed
	}

	loc := utils.ResolveTimezone(account.Profile.Timezone, "")
	today := utils.DayKey(time.Now(), loc)
	from, err := utils.DayStart(utils.AddDays(today, -(days-1)), loc)
	if shouldInterupt(err, c) {
		return
	}
	to, err := utils.DayStart(utils.AddDays(today, 1), loc)
	if shouldInterupt(err, c) {
		return
	}

	rows, err := s.mongoStore.ListMeasurements(account.AccountNumber, schema.MeasurementType(c.Query("type")), from, to)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"measurements": rows})
}

// createSymptomCheckin ingests one symptom check-in.
func (s *Server) createSymptomCheckin(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		CheckedAt time.Time       `json:"checked_at"`
		Severity  int             `json:"severity"`
		Symptoms  map[string]bool `json:"symptoms"`
		Other     string          `json:"other"`
		Notes     string          `json:"notes"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Severity < 0 || params.Severity > 10 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidSeverity)
		return
	}

	id, err := s.mongoStore.CreateSymptomCheckin(schema.SymptomCheckin{
		UserID:    accountNumber,
		CheckedAt: params.CheckedAt,
		Severity:  params.Severity,
		Symptoms:  params.Symptoms,
		Other:     params.Other,
		Notes:     params.Notes,
	})
	if shouldInterupt(err, c) {
		return
	}

	s.triggerRiskUpdate(accountNumber)

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// upsertAdherence records a medication taken or missed. Logging the same
// medication and day again replaces the earlier status.
func (s *Server) upsertAdherence(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		MedicationID string                 `json:"medication_id"`
		Date         string                 `json:"date"`
		Status       schema.AdherenceStatus `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Status != schema.AdherenceTaken && params.Status != schema.AdherenceMissed {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidAdherence)
		return
	}

	if params.Date == "" {
		loc := utils.ResolveTimezone(account.Profile.Timezone, "")
		params.Date = utils.DayKey(time.Now(), loc)
	} else if _, err := utils.ParseDay(params.Date); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	err := s.mongoStore.UpsertAdherence(schema.MedicationAdherence{
		UserID:       account.AccountNumber,
		MedicationID: params.MedicationID,
		Date:         params.Date,
		Status:       params.Status,
	})
	if err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidAdherence)
		return
	}

	s.triggerRiskUpdate(account.AccountNumber)

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
