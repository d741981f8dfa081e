package risk

import (
	"context"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/cardiometrix/cardiometrix-api/pipeline"
	"github.com/cardiometrix/cardiometrix-api/schema"
)

// ComputeDailyRiskActivity recomputes the feature snapshot, risk record and
// daily nudge for one account. An empty date resolves to today in the
// account's timezone.
func (r *RiskUpdateWorker) ComputeDailyRiskActivity(ctx context.Context, accountNumber, asOfDate string) (*schema.RiskRecord, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Compute daily risk for account.",
		zap.String("accountNumber", accountNumber),
		zap.String("asOfDate", asOfDate))

	record, err := r.pipeline.ComputeDailyRisk(accountNumber, asOfDate)
	if err != nil {
		return nil, err
	}

	logger.Info("Daily risk computed.", zap.String("band", string(record.Band)))
	return record, nil
}

// RefreshWeeklyActivity rebuilds the weekly summary and care plan covering
// the given date.
func (r *RiskUpdateWorker) RefreshWeeklyActivity(ctx context.Context, accountNumber, asOfDate string) (*schema.WeeklyRiskSummary, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Refresh weekly summary for account.", zap.String("accountNumber", accountNumber))

	return r.pipeline.WeeklySummary(accountNumber, asOfDate)
}

// RunDailyBatchActivity recomputes daily risk for every registered account.
// Per-account failures are collected in the result instead of stopping the
// sweep.
func (r *RiskUpdateWorker) RunDailyBatchActivity(ctx context.Context, asOfDate string) (*pipeline.BatchResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Run daily risk batch.", zap.String("asOfDate", asOfDate))

	result, err := r.pipeline.RunDailyBatch(asOfDate)
	if err != nil {
		return nil, err
	}

	logger.Info("Daily risk batch finished.",
		zap.Int("total", result.Total),
		zap.Int("failed", result.Failed))

	return result, nil
}
