package billing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type CreatePriceOverrideRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	AmountCents   int64      `json:"amount_cents" validate:"required,min=1"`
	EffectiveFrom time.Time  `json:"effective_from" validate:"required"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	Reason        string     `json:"reason" validate:"required,max=255"`
}

type PriceOverrideResponse struct {
	Override model.PriceOverride `json:"price_override"`
}

//encore:api public path=/v1/customers/:id/price-overrides method=POST tag:idempotency
func (s *Service) CreatePriceOverride(ctx context.Context, id int64, req *CreatePriceOverrideRequest) (*PriceOverrideResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	result, err := s.overrides.CreateOverride(ctx, &model.PriceOverride{
		CustomerID:    id,
		AmountCents:   req.AmountCents,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
		Reason:        req.Reason,
	})
	if err != nil {
		rlog.Error("failed to create price override", "error", err, "customer_id", id)
		return nil, err
	}

	return &PriceOverrideResponse{Override: *result}, nil
}

// Validate implements validation for CreatePriceOverrideRequest
func (r *CreatePriceOverrideRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.EffectiveTo != nil && r.EffectiveTo.Before(r.EffectiveFrom) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "effective_to must not precede effective_from"}
	}

	return nil
}
