package override

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

func (b *business) ListOverrides(ctx context.Context, customerID int64) ([]model.PriceOverride, error) {
	if _, err := b.customerRepo.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "customer not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get customer"}
	}

	dbOverrides, err := b.overrideRepo.ListOverridesByCustomer(ctx, customerID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list price overrides"}
	}

	result := make([]model.PriceOverride, len(dbOverrides))
	for i, dbOverride := range dbOverrides {
		result[i] = *convertDBOverrideToModel(dbOverride)
	}

	return result, nil
}
