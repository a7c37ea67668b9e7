package period

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/periods"
)

// EnsureNextPeriod is idempotent: while a pending or overdue period exists
// the call is a no-op returning that period. The customer row lock plus
// the partial unique index on outstanding periods guarantee at most one
// outstanding period even under concurrent triggers.
func (b *business) EnsureNextPeriod(ctx context.Context, customerID int64) (*model.BillingPeriod, bool, error) {
	var result *model.BillingPeriod
	var created bool

	err := b.stateMachine.WithCustomerLock(ctx, customerID, func(r domain.TxRepos, customer customers.Customer) error {
		if !customer.Active {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "membership is inactive"}
		}

		existing, err := r.Periods.GetOutstandingPeriod(ctx, customerID)
		if err == nil {
			result = convertDBPeriodToModel(existing)
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.Internal, Message: "failed to check outstanding period"}
		}

		dueDate := nextDueDate(ctx, r, customer)

		// The amount is captured here once; overrides created later never
		// change it.
		amountCents, err := b.pricing.ResolveAmount(ctx, customerID, dueDate.Time)
		if err != nil {
			return err
		}

		dbPeriod, err := r.Periods.CreatePeriod(ctx, periods.CreatePeriodParams{
			CustomerID:  customerID,
			DueDate:     dueDate,
			AmountCents: amountCents,
			Status:      string(model.PeriodStatusPending),
		})
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				// Another trigger created the outstanding period first.
				existing, gerr := r.Periods.GetOutstandingPeriod(ctx, customerID)
				if gerr != nil {
					return &errs.Error{Code: errs.Internal, Message: "failed to load outstanding period"}
				}
				result = convertDBPeriodToModel(existing)
				return nil
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to create billing period"}
		}

		if err := r.Customers.SetNextDueDate(ctx, customers.SetNextDueDateParams{
			ID:          customerID,
			NextDueDate: dueDate,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update next due date"}
		}

		result = convertDBPeriodToModel(dbPeriod)
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return result, created, nil
}

// nextDueDate is one calendar month after the latest of the customer's
// registration date, last payment date, and the most recent period's due
// date.
func nextDueDate(ctx context.Context, r domain.TxRepos, customer customers.Customer) pgtype.Date {
	base := customer.RegistrationDate.Time
	if latest, err := r.Periods.LatestDueDate(ctx, customer.ID); err == nil && latest.Valid && latest.Time.After(base) {
		base = latest.Time
	}
	if customer.LastPaymentDate.Valid && customer.LastPaymentDate.Time.After(base) {
		base = customer.LastPaymentDate.Time
	}
	return pgtype.Date{Time: model.DateOnly(base).AddDate(0, 1, 0), Valid: true}
}
