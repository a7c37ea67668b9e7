package workflow

import (
	"context"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/business/period"
)

// ReminderSender is the notification boundary. Delivery is best-effort
// and never part of the billing transaction.
type ReminderSender interface {
	SendPaymentReminder(ctx context.Context, customerID, periodID int64) error
}

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	PeriodBusiness period.Business
	Reminders      ReminderSender
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(periodBusiness period.Business, reminders ReminderSender) {
	activityDeps = &ActivityDependencies{
		PeriodBusiness: periodBusiness,
		Reminders:      reminders,
	}
}

// MarkOverdueActivity flips a due period to overdue. A period that was
// paid or already marked in the meantime is a no-op, so retries are safe.
func MarkOverdueActivity(ctx context.Context, periodID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing mark overdue activity", "periodID", periodID)

	if activityDeps == nil || activityDeps.PeriodBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if err := activityDeps.PeriodBusiness.MarkOverdue(ctx, periodID, time.Now()); err != nil {
		logger.Error("Failed to mark period overdue", "periodID", periodID, "error", err)
		return err
	}

	logger.Info("Successfully marked period overdue", "periodID", periodID)
	return nil
}

// SendReminderActivity asks the notification sender to nudge the customer
// about an unpaid period.
func SendReminderActivity(ctx context.Context, customerID, periodID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing send reminder activity", "customerID", customerID, "periodID", periodID)

	if activityDeps == nil || activityDeps.Reminders == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if err := activityDeps.Reminders.SendPaymentReminder(ctx, customerID, periodID); err != nil {
		logger.Error("Failed to send payment reminder", "customerID", customerID, "periodID", periodID, "error", err)
		return err
	}

	return nil
}
