package period

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// Sweep transitions due pending periods to overdue and keeps days-overdue
// current on periods already overdue. Each UPDATE is one atomic statement,
// so partial progress never leaves an individual period half-transitioned.
// Paid periods are never touched; rerunning with the same asOf is a no-op.
func (b *business) Sweep(ctx context.Context, asOf time.Time) (*model.SweepResult, error) {
	day := pgtype.Date{Time: model.DateOnly(asOf), Valid: true}

	flipped, err := b.periodRepo.SweepPendingToOverdue(ctx, day)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to sweep pending periods"}
	}

	if _, err := b.periodRepo.RefreshOverdueDays(ctx, day); err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to refresh days overdue"}
	}

	result := &model.SweepResult{
		UpdatedCount: len(flipped),
		SweptAt:      asOf,
	}
	seen := make(map[int64]struct{}, len(flipped))
	for _, row := range flipped {
		if _, ok := seen[row.CustomerID]; ok {
			continue
		}
		seen[row.CustomerID] = struct{}{}
		result.CustomerIDs = append(result.CustomerIDs, row.CustomerID)
	}

	return result, nil
}
