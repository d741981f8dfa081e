package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardiometrix/cardiometrix-api/utils"
)

// adminRunDaily triggers the daily derivation batch over every account. The
// external scheduler calls this; per-user failures are reported in the result
// without aborting the run.
func (s *Server) adminRunDaily(c *gin.Context) {
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

	result, err := s.pipeline.RunDailyBatch(params.Date)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
