package billing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type SendReminderResponse struct {
	// Queued is true when a reminder was dispatched for an outstanding period.
	Queued   bool  `json:"queued"`
	PeriodID int64 `json:"period_id,omitempty"`
}

//encore:api public path=/v1/customers/:id/reminders method=POST
func (s *Service) SendReminder(ctx context.Context, id int64) (*SendReminderResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	periods, err := s.periods.GetBillingPeriods(ctx, id, time.Now())
	if err != nil {
		rlog.Error("failed to load billing periods", "error", err, "customer_id", id)
		return nil, err
	}

	for _, period := range periods {
		if !period.Status.Payable() {
			continue
		}
		periodID := period.ID
		runAsync("send-payment-reminder", func(ctx context.Context) error {
			return s.reminders.SendPaymentReminder(ctx, id, periodID)
		})
		return &SendReminderResponse{Queued: true, PeriodID: periodID}, nil
	}

	// Nothing outstanding; not an error, just nothing to remind about.
	return &SendReminderResponse{Queued: false}, nil
}
