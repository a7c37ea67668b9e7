package billing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type GetBillingPeriodsResponse struct {
	Periods []model.BillingPeriod `json:"periods"`
}

//encore:api public path=/v1/customers/:id/periods method=GET
func (s *Service) GetBillingPeriods(ctx context.Context, id int64) (*GetBillingPeriodsResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	periods, err := s.periods.GetBillingPeriods(ctx, id, time.Now())
	if err != nil {
		rlog.Error("failed to get billing periods", "error", err, "customer_id", id)
		return nil, err
	}

	return &GetBillingPeriodsResponse{Periods: periods}, nil
}
