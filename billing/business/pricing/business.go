package pricing

import (
	"context"
	"time"

	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/overrides"
)

type Business interface {
	ResolveAmount(ctx context.Context, customerID int64, onDate time.Time) (int64, error)
}

// business resolves the fee amount that applies to a customer on a date.
// Pure read; no side effects.
type business struct {
	overrideRepo overrides.Querier
	customerRepo customers.Querier
}

func NewPricingBusiness(overrideRepo overrides.Querier, customerRepo customers.Querier) Business {
	return &business{
		overrideRepo: overrideRepo,
		customerRepo: customerRepo,
	}
}
