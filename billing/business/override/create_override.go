package override

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/overrides"
)

// CreateOverride rejects overlapping ranges outright. The overlap check
// runs first for a clean error message; the exclusion constraint in the
// schema is the backstop for concurrent creations.
func (b *business) CreateOverride(ctx context.Context, override *model.PriceOverride) (*model.PriceOverride, error) {
	if _, err := b.customerRepo.GetCustomer(ctx, override.CustomerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "customer not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get customer"}
	}

	effectiveFrom := pgtype.Date{Time: model.DateOnly(override.EffectiveFrom), Valid: true}
	effectiveTo := pgtype.Date{}
	if override.EffectiveTo != nil {
		if override.EffectiveTo.Before(override.EffectiveFrom) {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "effective_to must not precede effective_from"}
		}
		effectiveTo = pgtype.Date{Time: model.DateOnly(*override.EffectiveTo), Valid: true}
	}

	overlapping, err := b.overrideRepo.CountOverlappingOverrides(ctx, overrides.CountOverlappingOverridesParams{
		CustomerID:    override.CustomerID,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to check override ranges"}
	}
	if overlapping > 0 {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "price override overlaps an existing override"}
	}

	dbOverride, err := b.overrideRepo.CreateOverride(ctx, overrides.CreateOverrideParams{
		CustomerID:    override.CustomerID,
		AmountCents:   override.AmountCents,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
		Reason:        override.Reason,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ExclusionViolation {
			return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "price override overlaps an existing override"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create price override"}
	}

	return convertDBOverrideToModel(dbOverride), nil
}
