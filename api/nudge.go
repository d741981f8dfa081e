package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardiometrix/cardiometrix-api/schema"
	"github.com/cardiometrix/cardiometrix-api/store"
)

// nudgeToday returns the one nudge of the day, deriving the day first when
// needed.
func (s *Server) nudgeToday(c *gin.Context) {
	accountNumber := c.GetString("requester")

	nudge, err := s.pipeline.DailyNudge(accountNumber)
	if err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorRiskCompute)
		return
	}
	if nudge == nil {
		abortWithEncoding(c, http.StatusNotFound, errorNoNudgeToday)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": nudge})
}

// nudgeSetStatus marks today's nudge done or snoozed.
func (s *Server) nudgeSetStatus(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Status schema.NudgeStatus `json:"status"`
	}
	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Status != schema.NudgeDone && params.Status != schema.NudgeSnoozed {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.pipeline.SetNudgeStatus(accountNumber, params.Status); err != nil {
		if err == store.ErrNoRecord {
			abortWithEncoding(c, http.StatusNotFound, errorNoNudgeToday)
			return
		}
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// nudgeCompute re-derives today's risk and nudge on demand.
func (s *Server) nudgeCompute(c *gin.Context) {
	accountNumber := c.GetString("requester")

	if _, err := s.pipeline.ComputeDailyRisk(accountNumber, ""); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorRiskCompute)
		return
	}

	nudge, err := s.pipeline.DailyNudge(accountNumber)
	if err != nil || nudge == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorRiskCompute)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": nudge})
}
