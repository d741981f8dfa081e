package risk

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/cardiometrix/cardiometrix-api/pipeline"
	"github.com/cardiometrix/cardiometrix-api/schema"
)

const (
	AccountRiskCheckInterval = time.Hour
	DailyBatchInterval       = 24 * time.Hour
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// AccountRiskUpdateWorkflow keeps one account's derived records current. It
// recomputes the day's risk whenever the timer fires or a new log signal
// arrives, then refreshes the weekly rollup from the new record.
func (r *RiskUpdateWorker) AccountRiskUpdateWorkflow(ctx workflow.Context, accountNumber string) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, "riskCheckSignal")
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, AccountRiskCheckInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodically account risk updates")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Trigger account risk updates by signal")
	})

	selector.Select(ctx)

	var record schema.RiskRecord
	if err := workflow.ExecuteActivity(ctx, r.ComputeDailyRiskActivity, accountNumber, "").Get(ctx, &record); err != nil {
		logger.Error("Fail to compute daily risk.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, r.AccountRiskUpdateWorkflow, accountNumber)
	}

	if record.Band == schema.BandRed {
		logger.Info("Account risk is in the red band",
			zap.String("accountNumber", accountNumber),
			zap.String("asOfDate", record.AsOfDate))
	}

	if err := workflow.ExecuteActivity(ctx, r.RefreshWeeklyActivity, accountNumber, record.AsOfDate).Get(ctx, nil); err != nil {
		logger.Error("Fail to refresh weekly summary.", zap.Error(err))
		sentry.CaptureException(err)
	}

	return workflow.NewContinueAsNewError(ctx, r.AccountRiskUpdateWorkflow, accountNumber)
}

// DailyBatchWorkflow sweeps every registered account once a day so accounts
// without an active per-account workflow still get fresh records.
func (r *RiskUpdateWorker) DailyBatchWorkflow(ctx workflow.Context) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, "batchRunSignal")
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, DailyBatchInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start daily batch by timer")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Start daily batch by signal")
	})

	selector.Select(ctx)

	var result pipeline.BatchResult
	if err := workflow.ExecuteActivity(ctx, r.RunDailyBatchActivity, "").Get(ctx, &result); err != nil {
		logger.Error("Fail to run daily batch.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, r.DailyBatchWorkflow)
	}

	if result.Failed > 0 {
		logger.Warn("Daily batch finished with failed accounts",
			zap.Int("total", result.Total),
			zap.Int("failed", result.Failed))
	}

	return workflow.NewContinueAsNewError(ctx, r.DailyBatchWorkflow)
}
