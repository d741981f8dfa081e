package pipeline

import (
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/cardiometrix/cardiometrix-api/schema"
)

// UserBatchResult is one user's outcome within a batch run.
type UserBatchResult struct {
	AccountNumber string          `json:"account_number"`
	Band          schema.RiskBand `json:"band,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// BatchResult summarizes a daily batch run.
type BatchResult struct {
	AsOfDate  string            `json:"as_of_date"`
	Total     int               `json:"total"`
	Failed    int               `json:"failed"`
	Users     []UserBatchResult `json:"users"`
	StartedAt time.Time         `json:"started_at"`
	Elapsed   time.Duration     `json:"elapsed"`
}

// RunDailyBatch derives today's risk for every registered account. One user's
// failure is recorded and reported, the rest of the batch still runs.
func (p *Pipeline) RunDailyBatch(asOfDate string) (*BatchResult, error) {
	accounts, err := p.cardio.ListAccountNumbers()
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		AsOfDate:  asOfDate,
		Total:     len(accounts),
		Users:     make([]UserBatchResult, 0, len(accounts)),
		StartedAt: time.Now().UTC(),
	}

	for _, accountNumber := range accounts {
		record, err := p.ComputeDailyRisk(accountNumber, asOfDate)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":  logPrefix,
				"account": accountNumber,
			}).WithError(err).Error("daily batch user failed")
			sentry.CaptureException(err)
			p.scope.Counter("batch_user_failed").Inc(1)

			result.Failed++
			result.Users = append(result.Users, UserBatchResult{
				AccountNumber: accountNumber,
				Error:         err.Error(),
			})
			continue
		}

		result.Users = append(result.Users, UserBatchResult{
			AccountNumber: accountNumber,
			Band:          record.Band,
		})
	}

	result.Elapsed = time.Since(result.StartedAt)
	p.scope.Counter("batch_completed").Inc(1)
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"total":  result.Total,
		"failed": result.Failed,
	}).Info("daily batch finished")

	return result, nil
}
