package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/payments"
	"encore.app/billing/repository/periods"
)

// errKeyAlreadyRecorded signals that another submission with the same
// idempotency key committed between our key lookup and our insert; the
// caller falls back to the replay path.
var errKeyAlreadyRecorded = errors.New("idempotency key already recorded")

// SubmitPayment applies a payment against one or more billing periods.
//
// The idempotency key is checked first: a repeated key replays the stored
// result without mutating anything. Otherwise all writes happen in one
// transaction under the customer row lock, with period statuses
// re-validated after locking so a concurrent submission that settled an
// overlapping set fails cleanly and commits nothing.
func (b *business) SubmitPayment(ctx context.Context, req *model.PaymentRequest) (*model.PaymentResult, error) {
	periodIDs := dedupeIDs(req.BillingPeriodIDs)
	if len(periodIDs) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "no billing periods selected"}
	}

	if existing, err := b.paymentRepo.GetSubmissionByIdempotencyKey(ctx, req.IdempotencyKey); err == nil {
		return b.loadResult(ctx, existing, true)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to check idempotency key"}
	}

	// Pre-validate outside the lock so a stale request (already-settled
	// period, wrong customer) fails before any transaction is opened.
	preCheck, err := b.periodRepo.ListPeriodsByIDs(ctx, periodIDs)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load billing periods"}
	}
	if err := validateSelection(req.CustomerID, periodIDs, preCheck, false); err != nil {
		return nil, err
	}

	var result *model.PaymentResult
	err = b.stateMachine.WithCustomerLock(ctx, req.CustomerID, func(r domain.TxRepos, customer customers.Customer) error {
		locked, err := r.Periods.GetPeriodsForUpdate(ctx, periodIDs)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to lock billing periods"}
		}
		// Re-validation after locking: a period paid since the pre-check
		// means a concurrent submission won the race.
		if err := validateSelection(req.CustomerID, periodIDs, locked, true); err != nil {
			return err
		}

		var totalCents int64
		for _, p := range locked {
			totalCents += p.AmountCents
		}

		paymentDay := pgtype.Date{Time: model.DateOnly(req.PaymentDate), Valid: true}

		invoiceNumber, err := b.nextInvoiceNumber(ctx, r, req.PaymentDate.Format("200601"))
		if err != nil {
			return err
		}

		dbInvoice, err := r.Payments.CreateInvoice(ctx, payments.CreateInvoiceParams{
			InvoiceNumber:    invoiceNumber,
			TotalAmountCents: totalCents,
			PaymentStatus:    model.InvoiceStatusPaid,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to create invoice"}
		}

		notes := pgtype.Text{}
		if req.Notes != nil {
			notes = pgtype.Text{String: *req.Notes, Valid: true}
		}
		dbSubmission, err := r.Payments.CreateSubmission(ctx, payments.CreateSubmissionParams{
			CustomerID:     req.CustomerID,
			AmountCents:    totalCents,
			PaymentDate:    paymentDay,
			PaymentMethod:  req.PaymentMethod,
			Notes:          notes,
			IdempotencyKey: req.IdempotencyKey,
			InvoiceID:      dbInvoice.ID,
		})
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				return errKeyAlreadyRecorded
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to create fee submission"}
		}

		if err := r.Payments.LinkSubmissionPeriods(ctx, payments.LinkSubmissionPeriodsParams{
			FeeSubmissionID:  dbSubmission.ID,
			BillingPeriodIDs: periodIDs,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to link settled periods"}
		}

		settled, err := r.Periods.MarkPeriodsPaid(ctx, periodIDs)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to settle billing periods"}
		}
		if settled != int64(len(periodIDs)) {
			return &errs.Error{Code: errs.Aborted, Message: "billing periods were settled by a concurrent submission"}
		}

		// Recompute the denormalized customer projection inside the same
		// transaction. Next due date is the earliest remaining unpaid
		// period, or NULL until the generator creates the next one.
		nextDue, err := r.Periods.EarliestOutstandingDueDate(ctx, req.CustomerID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to compute next due date"}
		}
		dbCustomer, err := r.Customers.UpdateBillingProjection(ctx, customers.UpdateBillingProjectionParams{
			ID:              req.CustomerID,
			NextDueDate:     nextDue,
			LastPaymentDate: paymentDay,
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update customer billing fields"}
		}

		updatedPeriods := make([]model.BillingPeriod, len(locked))
		for i, p := range locked {
			mp := convertDBPeriodToModel(p)
			mp.Status = model.PeriodStatusPaid
			updatedPeriods[i] = mp
		}

		submission := convertDBSubmissionToModel(dbSubmission)
		submission.BillingPeriodIDs = periodIDs

		result = &model.PaymentResult{
			Submission:     *submission,
			Invoice:        *convertDBInvoiceToModel(dbInvoice),
			UpdatedPeriods: updatedPeriods,
			Customer:       *convertDBCustomerToModel(dbCustomer),
		}
		return nil
	})
	if errors.Is(err, errKeyAlreadyRecorded) {
		existing, gerr := b.paymentRepo.GetSubmissionByIdempotencyKey(ctx, req.IdempotencyKey)
		if gerr != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to load replayed submission"}
		}
		return b.loadResult(ctx, existing, true)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

// validateSelection checks every requested period against its current
// state. locked distinguishes the in-transaction re-validation, where an
// already-paid period implies a lost race rather than a stale request.
func validateSelection(customerID int64, requestedIDs []int64, got []periods.BillingPeriod, locked bool) error {
	byID := make(map[int64]periods.BillingPeriod, len(got))
	for _, p := range got {
		byID[p.ID] = p
	}

	for _, id := range requestedIDs {
		p, ok := byID[id]
		if !ok {
			return &errs.Error{Code: errs.NotFound, Message: fmt.Sprintf("billing period %d not found", id)}
		}
		if p.CustomerID != customerID {
			return &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("billing period %d belongs to a different customer", id)}
		}
		if !model.PeriodStatus(p.Status).Payable() {
			if locked {
				return &errs.Error{Code: errs.Aborted, Message: fmt.Sprintf("billing period %d was settled by a concurrent submission", id)}
			}
			return &errs.Error{Code: errs.FailedPrecondition, Message: fmt.Sprintf("billing period %d is already settled", id)}
		}
	}
	return nil
}

func (b *business) nextInvoiceNumber(ctx context.Context, r domain.TxRepos, yearMonth string) (string, error) {
	seq, err := r.Payments.NextInvoiceSequence(ctx, yearMonth)
	if err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: "failed to allocate invoice number"}
	}
	return fmt.Sprintf("INV-%s-%04d", yearMonth, seq), nil
}

// loadResult reconstructs the original reconciliation result for an
// idempotent replay.
func (b *business) loadResult(ctx context.Context, dbSubmission payments.FeeSubmission, replayed bool) (*model.PaymentResult, error) {
	dbInvoice, err := b.paymentRepo.GetInvoice(ctx, dbSubmission.InvoiceID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load invoice"}
	}

	periodIDs, err := b.paymentRepo.GetSubmissionPeriodIDs(ctx, dbSubmission.ID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load settled periods"}
	}

	dbPeriods, err := b.periodRepo.ListPeriodsByIDs(ctx, periodIDs)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load billing periods"}
	}

	dbCustomer, err := b.customerRepo.GetCustomer(ctx, dbSubmission.CustomerID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load customer"}
	}

	updatedPeriods := make([]model.BillingPeriod, len(dbPeriods))
	for i, p := range dbPeriods {
		updatedPeriods[i] = convertDBPeriodToModel(p)
	}

	submission := convertDBSubmissionToModel(dbSubmission)
	submission.BillingPeriodIDs = periodIDs

	return &model.PaymentResult{
		Submission:     *submission,
		Invoice:        *convertDBInvoiceToModel(dbInvoice),
		UpdatedPeriods: updatedPeriods,
		Customer:       *convertDBCustomerToModel(dbCustomer),
		Replayed:       replayed,
	}, nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
