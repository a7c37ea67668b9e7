package billing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

type EnsureNextPeriodResponse struct {
	Period  model.BillingPeriod `json:"period"`
	Created bool                `json:"created"`
}

//encore:api public path=/v1/customers/:id/periods/ensure method=POST
func (s *Service) EnsureNextPeriod(ctx context.Context, id int64) (*EnsureNextPeriodResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	result, created, err := s.periods.EnsureNextPeriod(ctx, id)
	if err != nil {
		rlog.Error("failed to ensure next period", "error", err, "customer_id", id)
		return nil, err
	}

	// Start the Temporal lifecycle workflow for a freshly opened period.
	if created {
		if wfErr := s.startPeriodWorkflow(ctx, result); wfErr != nil {
			// The period exists either way; the sweep endpoint covers
			// overdue transitions if the workflow never starts.
			rlog.Error("workflow start issue", "period_id", result.ID, "customer_id", id, "error", wfErr)
		}
	}

	return &EnsureNextPeriodResponse{
		Period:  *result,
		Created: created,
	}, nil
}

// startPeriodWorkflow starts the Temporal lifecycle workflow for one billing period
func (s *Service) startPeriodWorkflow(ctx context.Context, period *model.BillingPeriod) error {
	workflowID := fmt.Sprintf("billing-period-%d", period.ID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.PeriodLifecycleParams{
		PeriodID:   period.ID,
		CustomerID: period.CustomerID,
		DueDate:    period.DueDate,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.PeriodLifecycle, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "period_id", period.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
