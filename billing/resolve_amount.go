package billing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type ResolveAmountRequest struct {
	// OnDate defaults to today when omitted.
	OnDate time.Time `query:"on_date"`
}

type ResolveAmountResponse struct {
	CustomerID  int64     `json:"customer_id"`
	OnDate      time.Time `json:"on_date"`
	AmountCents int64     `json:"amount_cents"`
}

//encore:api public path=/v1/customers/:id/fee-amount method=GET
func (s *Service) ResolveAmount(ctx context.Context, id int64, req *ResolveAmountRequest) (*ResolveAmountResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	onDate := req.OnDate
	if onDate.IsZero() {
		onDate = time.Now()
	}

	amount, err := s.pricing.ResolveAmount(ctx, id, onDate)
	if err != nil {
		rlog.Error("failed to resolve fee amount", "error", err, "customer_id", id)
		return nil, err
	}

	return &ResolveAmountResponse{
		CustomerID:  id,
		OnDate:      onDate,
		AmountCents: amount,
	}, nil
}
