package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type FeeStatusResponse struct {
	Status model.FeeStatus `json:"status"`
}

//encore:api public path=/v1/customers/:id/fees/status method=GET
func (s *Service) GetFeeStatus(ctx context.Context, id int64) (*FeeStatusResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	status, err := s.payments.GetFeeStatus(ctx, id)
	if err != nil {
		rlog.Error("failed to get fee status", "error", err, "customer_id", id)
		return nil, err
	}

	return &FeeStatusResponse{Status: *status}, nil
}
