package risk

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/cardiometrix/cardiometrix-api/pipeline"
)

const TaskListName = "cardiometrix-risk-tasks"

type RiskUpdateWorker struct {
	domain   string
	pipeline *pipeline.Pipeline
}

func NewRiskUpdateWorker(domain string, p *pipeline.Pipeline) *RiskUpdateWorker {
	return &RiskUpdateWorker{
		domain:   domain,
		pipeline: p,
	}
}

func (r *RiskUpdateWorker) Register() {
	workflow.RegisterWithOptions(r.AccountRiskUpdateWorkflow, workflow.RegisterOptions{Name: "AccountRiskUpdateWorkflow"})
	workflow.RegisterWithOptions(r.DailyBatchWorkflow, workflow.RegisterOptions{Name: "DailyBatchWorkflow"})

	activity.RegisterWithOptions(r.ComputeDailyRiskActivity, activity.RegisterOptions{Name: "ComputeDailyRiskActivity"})
	activity.RegisterWithOptions(r.RefreshWeeklyActivity, activity.RegisterOptions{Name: "RefreshWeeklyActivity"})
	activity.RegisterWithOptions(r.RunDailyBatchActivity, activity.RegisterOptions{Name: "RunDailyBatchActivity"})
}

func (r *RiskUpdateWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	// TaskListName identifies set of client workflows, activities, and workers.
	// It could be your group or client or application name.
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		r.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
