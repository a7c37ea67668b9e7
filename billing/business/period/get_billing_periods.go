package period

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// GetBillingPeriods returns every period for a customer, newest first.
// Days-overdue is recomputed as of asOf so the projection is accurate
// between sweeps.
func (b *business) GetBillingPeriods(ctx context.Context, customerID int64, asOf time.Time) ([]model.BillingPeriod, error) {
	if _, err := b.customerRepo.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "customer not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get customer"}
	}

	dbPeriods, err := b.periodRepo.ListPeriodsByCustomer(ctx, customerID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list billing periods"}
	}

	result := make([]model.BillingPeriod, len(dbPeriods))
	for i, dbPeriod := range dbPeriods {
		p := convertDBPeriodToModel(dbPeriod)
		if p.Status.Payable() {
			if days := model.DaysOverdue(p.DueDate, asOf); days > p.DaysOverdue {
				p.DaysOverdue = days
			}
		}
		result[i] = *p
	}

	return result, nil
}
