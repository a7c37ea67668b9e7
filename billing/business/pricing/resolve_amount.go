package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/overrides"
)

// ResolveAmount returns the fee in cents for customerID on onDate. An
// active price override wins over the plan's monthly fee. A customer with
// neither plan nor override cannot be priced; the caller must not create
// a period for them.
func (b *business) ResolveAmount(ctx context.Context, customerID int64, onDate time.Time) (int64, error) {
	onDay := pgtype.Date{Time: model.DateOnly(onDate), Valid: true}

	override, err := b.overrideRepo.GetActiveOverride(ctx, overrides.GetActiveOverrideParams{
		CustomerID: customerID,
		OnDate:     onDay,
	})
	if err == nil {
		return override.AmountCents, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to look up price override"}
	}

	plan, err := b.customerRepo.GetCustomerPlan(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, cerr := b.customerRepo.GetCustomer(ctx, customerID); cerr != nil {
				if errors.Is(cerr, pgx.ErrNoRows) {
					return 0, &errs.Error{Code: errs.NotFound, Message: "customer not found"}
				}
				return 0, &errs.Error{Code: errs.Internal, Message: "failed to get customer"}
			}
			return 0, &errs.Error{Code: errs.FailedPrecondition, Message: "fee amount undetermined: customer has no plan and no active price override"}
		}
		return 0, &errs.Error{Code: errs.Internal, Message: "failed to load plan"}
	}

	return plan.MonthlyFeeCents, nil
}
