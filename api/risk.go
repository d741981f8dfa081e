package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cardiometrix/cardiometrix-api/utils"
)

// riskToday returns today's risk record, deriving it first when the day has
// not been computed yet.
func (s *Server) riskToday(c *gin.Context) {
	accountNumber := c.GetString("requester")

	record, err := s.pipeline.TodayRisk(accountNumber)
	if err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorRiskCompute)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": record})
}

// riskCompute forces a recomputation of one day. Body: {"date": "YYYY-MM-DD"},
// empty for today.
func (s *Server) riskCompute(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Date string `json:"date"`
	}
	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Date != "" {
		if _, err := utils.ParseDay(params.Date); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	record, err := s.pipeline.ComputeDailyRisk(accountNumber, params.Date)
	if err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorRiskCompute)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": record})
}

// riskForecast projects the risk trend. Optional query param horizons, a
// comma-separated day list, defaults to 30,60,90.
func (s *Server) riskForecast(c *gin.Context) {
	accountNumber := c.GetString("requester")

	horizons := []int{}
	if v := c.Query("horizons"); v != "" {
		for _, part := range strings.Split(v, ",") {
			days, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || days <= 0 {
				abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
				return
			}
			horizons = append(horizons, days)
		}
	}

	forecast, err := s.pipeline.Forecast(accountNumber, horizons)
	if shouldInterupt(err, c) {
		return
	}

	if forecast == nil {
		abortWithEncoding(c, http.StatusNotFound, errorForecastUnavailable)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": forecast})
}

func (s *Server) riskAnomalies(c *gin.Context) {
	accountNumber := c.GetString("requester")

	anomalies, err := s.pipeline.Anomalies(accountNumber)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"anomalies": anomalies})
}

// weeklySummary derives and returns this week's rollup. Optional query param
// date recomputes as of another day.
func (s *Server) weeklySummary(c *gin.Context) {
	accountNumber := c.GetString("requester")

	date := c.Query("date")
	if date != "" {
		if _, err := utils.ParseDay(date); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	summary, err := s.pipeline.WeeklySummary(accountNumber, date)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": summary})
}

func (s *Server) carePlan(c *gin.Context) {
	accountNumber := c.GetString("requester")

	date := c.Query("date")
	if date != "" {
		if _, err := utils.ParseDay(date); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	plan, err := s.pipeline.CarePlan(accountNumber, date)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": plan})
}

func (s *Server) dataQuality(c *gin.Context) {
	accountNumber := c.GetString("requester")

	result, err := s.pipeline.DataQuality(accountNumber)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (s *Server) cohortComparison(c *gin.Context) {
	accountNumber := c.GetString("requester")

	comparison, err := s.pipeline.Cohort(accountNumber)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": comparison})
}
