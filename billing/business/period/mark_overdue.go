package period

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/periods"
)

// MarkOverdue flips a single pending period to overdue once its due date
// has passed. A period that is already overdue or paid is left untouched;
// losing a race against a concurrent payment is not an error.
func (b *business) MarkOverdue(ctx context.Context, periodID int64, asOf time.Time) error {
	dbPeriod, err := b.periodRepo.GetPeriod(ctx, periodID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "billing period not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to get billing period"}
	}

	if dbPeriod.Status != string(model.PeriodStatusPending) {
		return nil
	}
	if !model.DateOnly(asOf).After(model.DateOnly(dbPeriod.DueDate.Time)) {
		return nil
	}

	if _, err := b.periodRepo.MarkPeriodOverdue(ctx, periods.MarkPeriodOverdueParams{
		ID:          periodID,
		DaysOverdue: model.DaysOverdue(dbPeriod.DueDate.Time, asOf),
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to mark period overdue"}
	}

	return nil
}
