package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/cardiometrix/cardiometrix-api/external/cadence"
)

// FIXME: there will be an import cycle if we use `github.com/cardiometrix/cardiometrix-api/background/risk`
const TaskListName = "cardiometrix-risk-tasks"

// TriggerAccountRiskUpdate is a helper function to send a signal to
// trigger the workflow that recomputes the daily risk of the given accounts.
func TriggerAccountRiskUpdate(client cadence.CadenceClient, c context.Context, accountNumbers []string) error {
	for _, a := range accountNumbers {
		if _, err := client.SignalWithStartWorkflow(c,
			fmt.Sprintf("account-risk-%s", a), "riskCheckSignal", nil,
			cadenceClient.StartWorkflowOptions{
				ID:                           fmt.Sprintf("account-risk-%s", a),
				TaskList:                     TaskListName,
				ExecutionStartToCloseTimeout: time.Hour,
				WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
			}, "AccountRiskUpdateWorkflow", a); err != nil {
			return err
		}
	}
	return nil
}

// TriggerDailyBatch is a helper function to send a signal to kick the
// daily batch workflow that sweeps every registered account.
func TriggerDailyBatch(client cadence.CadenceClient, c context.Context) error {
	_, err := client.SignalWithStartWorkflow(c,
		"daily-risk-batch", "batchRunSignal", nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           "daily-risk-batch",
			TaskList:                     TaskListName,
			ExecutionStartToCloseTimeout: time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, "DailyBatchWorkflow")
	return err
}
