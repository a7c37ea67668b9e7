package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type ListPriceOverridesResponse struct {
	Overrides []model.PriceOverride `json:"price_overrides"`
}

//encore:api public path=/v1/customers/:id/price-overrides method=GET
func (s *Service) ListPriceOverrides(ctx context.Context, id int64) (*ListPriceOverridesResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	overrides, err := s.overrides.ListOverrides(ctx, id)
	if err != nil {
		rlog.Error("failed to list price overrides", "error", err, "customer_id", id)
		return nil, err
	}

	return &ListPriceOverridesResponse{Overrides: overrides}, nil
}
