package billing

import (
	"context"

	"encore.dev/rlog"
)

// logReminderSender records reminder deliveries in the structured log.
// Wiring a real mail or SMS provider only requires another
// workflow.ReminderSender implementation here.
type logReminderSender struct{}

func (logReminderSender) SendPaymentReminder(ctx context.Context, customerID, periodID int64) error {
	rlog.Info("payment reminder sent",
		"customer_id", customerID,
		"billing_period_id", periodID,
	)
	return nil
}
