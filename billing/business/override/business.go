package override

import (
	"context"

	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/overrides"
)

type Business interface {
	// CreateOverride registers a custom fee for a customer. Ranges for the
	// same customer must not overlap; creation never touches existing
	// overrides or periods.
	CreateOverride(ctx context.Context, override *model.PriceOverride) (*model.PriceOverride, error)

	ListOverrides(ctx context.Context, customerID int64) ([]model.PriceOverride, error)
}

type business struct {
	overrideRepo overrides.Querier
	customerRepo customers.Querier
}

func NewOverrideBusiness(overrideRepo overrides.Querier, customerRepo customers.Querier) Business {
	return &business{
		overrideRepo: overrideRepo,
		customerRepo: customerRepo,
	}
}

// convertDBOverrideToModel converts a database PriceOverride to a domain model PriceOverride
func convertDBOverrideToModel(dbOverride overrides.PriceOverride) *model.PriceOverride {
	override := &model.PriceOverride{
		ID:            dbOverride.ID,
		CustomerID:    dbOverride.CustomerID,
		AmountCents:   dbOverride.AmountCents,
		EffectiveFrom: dbOverride.EffectiveFrom.Time,
		Reason:        dbOverride.Reason,
		CreatedAt:     dbOverride.CreatedAt.Time,
	}
	if dbOverride.EffectiveTo.Valid {
		override.EffectiveTo = &dbOverride.EffectiveTo.Time
	}
	return override
}
