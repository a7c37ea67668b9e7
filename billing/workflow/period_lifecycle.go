package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// PeriodLifecycleParams contains parameters for starting the period lifecycle workflow
type PeriodLifecycleParams struct {
	PeriodID   int64     `json:"period_id"`
	CustomerID int64     `json:"customer_id"`
	DueDate    time.Time `json:"due_date"`
}

const (
	// A period is overdue once its due date has fully passed.
	overdueGrace = 24 * time.Hour

	reminderInterval = 24 * time.Hour
	maxReminders     = 3
)

// PeriodLifecycle shadows one billing period from creation to settlement.
// It sleeps until the period is overdue, marks it, and sends best-effort
// payment reminders until a payment signal arrives or the reminder budget
// is spent. The sweeper stays authoritative for overdue state; this
// workflow is the timely path.
func PeriodLifecycle(ctx workflow.Context, params PeriodLifecycleParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting period lifecycle workflow", "periodID", params.PeriodID, "customerID", params.CustomerID, "dueDate", params.DueDate)

	paymentCh := workflow.GetSignalChannel(ctx, PaymentReceivedSignalName)
	settled := false

	// Wait out the pending window, ending early on payment.
	overdueAt := params.DueDate.Add(overdueGrace)
	for !settled {
		wait := overdueAt.Sub(workflow.Now(ctx))
		if wait <= 0 {
			break
		}

		dueReached := false
		timer := workflow.NewTimer(ctx, wait)
		selector := workflow.NewSelector(ctx)
		selector.AddReceive(paymentCh, func(c workflow.ReceiveChannel, more bool) {
			var signal PaymentReceivedSignal
			c.Receive(ctx, &signal)
			logger.Info("Period settled before due date", "periodID", params.PeriodID, "feeSubmissionID", signal.FeeSubmissionID)
			settled = true
		})
		selector.AddFuture(timer, func(f workflow.Future) {
			dueReached = true
		})
		selector.Select(ctx)

		if dueReached {
			break
		}
	}

	if settled {
		logger.Info("Period lifecycle workflow completed", "periodID", params.PeriodID)
		return nil
	}

	reminders := 0
	for !settled && reminders < maxReminders {
		if err := markOverdue(ctx, params.PeriodID); err != nil {
			logger.Error("Failed to mark period overdue", "periodID", params.PeriodID, "error", err)
		}
		if err := sendReminder(ctx, params.CustomerID, params.PeriodID); err != nil {
			// Reminders are best-effort only
			logger.Error("Failed to send payment reminder", "periodID", params.PeriodID, "error", err)
		}
		reminders++

		timer := workflow.NewTimer(ctx, reminderInterval)
		selector := workflow.NewSelector(ctx)
		selector.AddReceive(paymentCh, func(c workflow.ReceiveChannel, more bool) {
			var signal PaymentReceivedSignal
			c.Receive(ctx, &signal)
			logger.Info("Period settled", "periodID", params.PeriodID, "feeSubmissionID", signal.FeeSubmissionID)
			settled = true
		})
		selector.AddFuture(timer, func(f workflow.Future) {})
		selector.Select(ctx)
	}

	logger.Info("Period lifecycle workflow completed", "periodID", params.PeriodID, "settled", settled, "reminders", reminders)
	return nil
}

// markOverdue executes the MarkOverdue activity
func markOverdue(ctx workflow.Context, periodID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, MarkOverdueActivity, periodID).Get(ctx, nil)
}

// sendReminder executes the SendReminder activity
func sendReminder(ctx workflow.Context, customerID, periodID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, SendReminderActivity, customerID, periodID).Get(ctx, nil)
}
