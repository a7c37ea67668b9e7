package payment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// GetFeeStatus projects the customer's current billing state. A customer
// whose fee cannot be resolved (no plan, no override) still gets a status
// with a zero amount; the generator is where undetermined pricing is fatal.
func (b *business) GetFeeStatus(ctx context.Context, customerID int64) (*model.FeeStatus, error) {
	dbCustomer, err := b.customerRepo.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "customer not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get customer"}
	}

	status := &model.FeeStatus{
		CustomerID: customerID,
		Active:     dbCustomer.Active,
	}
	if dbCustomer.NextDueDate.Valid {
		status.NextDueDate = &dbCustomer.NextDueDate.Time
	}
	if dbCustomer.LastPaymentDate.Valid {
		status.LastPaymentDate = &dbCustomer.LastPaymentDate.Time
	}

	amountCents, err := b.pricing.ResolveAmount(ctx, customerID, time.Now())
	if err != nil {
		var e *errs.Error
		if errors.As(err, &e) && e.Code == errs.FailedPrecondition {
			return status, nil
		}
		return nil, err
	}
	status.CurrentAmountCents = amountCents

	return status, nil
}
