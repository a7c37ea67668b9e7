package payment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/payments"
)

// GetFeeHistory returns past fee submissions, most recent first, with the
// total count for pagination.
func (b *business) GetFeeHistory(ctx context.Context, customerID int64, limit, offset int32) ([]model.FeeSubmission, int64, error) {
	if _, err := b.customerRepo.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, &errs.Error{Code: errs.NotFound, Message: "customer not found"}
		}
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to get customer"}
	}

	dbSubmissions, err := b.paymentRepo.ListSubmissionsByCustomer(ctx, payments.ListSubmissionsByCustomerParams{
		CustomerID: customerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list fee submissions"}
	}

	totalCount, err := b.paymentRepo.CountSubmissionsByCustomer(ctx, customerID)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count fee submissions"}
	}

	result := make([]model.FeeSubmission, len(dbSubmissions))
	for i, dbSubmission := range dbSubmissions {
		submission := convertDBSubmissionToModel(dbSubmission)
		periodIDs, err := b.paymentRepo.GetSubmissionPeriodIDs(ctx, dbSubmission.ID)
		if err != nil {
			return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to load settled periods"}
		}
		submission.BillingPeriodIDs = periodIDs
		result[i] = *submission
	}

	return result, totalCount, nil
}
