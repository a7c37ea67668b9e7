package payment

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/domain"
	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/repository/customer_repo"
	"encore.app/billing/mocks/repository/payment_repo"
	"encore.app/billing/mocks/repository/period_repo"
	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/payments"
	"encore.app/billing/repository/periods"
)

type paymentMocks struct {
	customers *customer_repo.MockQuerier
	periods   *period_repo.MockQuerier
	payments  *payment_repo.MockQuerier
	sm        *state_machine.MockStateMachine
}

func newPaymentMocks(ctrl *gomock.Controller) (*business, *paymentMocks) {
	m := &paymentMocks{
		customers: customer_repo.NewMockQuerier(ctrl),
		periods:   period_repo.NewMockQuerier(ctrl),
		payments:  payment_repo.NewMockQuerier(ctrl),
		sm:        state_machine.NewMockStateMachine(ctrl),
	}
	b := &business{
		customerRepo: m.customers,
		periodRepo:   m.periods,
		paymentRepo:  m.payments,
		stateMachine: m.sm,
	}
	return b, m
}

func (m *paymentMocks) lockPassthrough(customerID int64) {
	m.sm.EXPECT().
		WithCustomerLock(gomock.Any(), customerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(domain.TxRepos, customers.Customer) error) error {
			repos := domain.TxRepos{Customers: m.customers, Periods: m.periods, Payments: m.payments}
			return fn(repos, customers.Customer{ID: customerID, Active: true})
		})
}

func payablePeriod(id, customerID, amountCents int64, status string) periods.BillingPeriod {
	return periods.BillingPeriod{
		ID:          id,
		CustomerID:  customerID,
		DueDate:     pgtype.Date{Time: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		AmountCents: amountCents,
		Status:      status,
	}
}

func paymentRequest(customerID int64, periodIDs []int64, key string) *model.PaymentRequest {
	return &model.PaymentRequest{
		CustomerID:       customerID,
		BillingPeriodIDs: periodIDs,
		PaymentDate:      time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC),
		PaymentMethod:    "bank_transfer",
		IdempotencyKey:   key,
	}
}

func TestSubmitPayment_SettlesMultiplePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newPaymentMocks(ctrl)
	customerID := int64(5)
	selected := []periods.BillingPeriod{
		payablePeriod(1, customerID, 4900, "overdue"),
		payablePeriod(2, customerID, 5200, "pending"),
	}

	m.payments.EXPECT().
		GetSubmissionByIdempotencyKey(gomock.Any(), "pay-key-1").
		Return(payments.FeeSubmission{}, pgx.ErrNoRows)
	m.periods.EXPECT().
		ListPeriodsByIDs(gomock.Any(), []int64{1, 2}).
		Return(selected, nil)
	m.lockPassthrough(customerID)
	m.periods.EXPECT().
		GetPeriodsForUpdate(gomock.Any(), []int64{1, 2}).
		Return(selected, nil)
	m.payments.EXPECT().
		NextInvoiceSequence(gomock.Any(), "202603").
		Return(int64(7), nil)
	m.payments.EXPECT().
		CreateInvoice(gomock.Any(), payments.CreateInvoiceParams{
			InvoiceNumber:    "INV-202603-0007",
			TotalAmountCents: 10100,
			PaymentStatus:    model.InvoiceStatusPaid,
		}).
		Return(payments.Invoice{ID: 30, InvoiceNumber: "INV-202603-0007", TotalAmountCents: 10100, PaymentStatus: "paid"}, nil)
	m.payments.EXPECT().
		CreateSubmission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg payments.CreateSubmissionParams) (payments.FeeSubmission, error) {
			assert.Equal(t, customerID, arg.CustomerID)
			assert.Equal(t, int64(10100), arg.AmountCents)
			assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), arg.PaymentDate.Time)
			assert.Equal(t, "pay-key-1", arg.IdempotencyKey)
			assert.Equal(t, int64(30), arg.InvoiceID)
			return payments.FeeSubmission{
				ID:             40,
				CustomerID:     customerID,
				AmountCents:    arg.AmountCents,
				PaymentDate:    arg.PaymentDate,
				PaymentMethod:  arg.PaymentMethod,
				IdempotencyKey: arg.IdempotencyKey,
				InvoiceID:      arg.InvoiceID,
			}, nil
		})
	m.payments.EXPECT().
		LinkSubmissionPeriods(gomock.Any(), payments.LinkSubmissionPeriodsParams{
			FeeSubmissionID:  40,
			BillingPeriodIDs: []int64{1, 2},
		}).
		Return(nil)
	m.periods.EXPECT().
		MarkPeriodsPaid(gomock.Any(), []int64{1, 2}).
		Return(int64(2), nil)
	m.periods.EXPECT().
		EarliestOutstandingDueDate(gomock.Any(), customerID).
		Return(pgtype.Date{}, nil)
	m.customers.EXPECT().
		UpdateBillingProjection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg customers.UpdateBillingProjectionParams) (customers.Customer, error) {
			assert.False(t, arg.NextDueDate.Valid)
			assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), arg.LastPaymentDate.Time)
			return customers.Customer{
				ID:              customerID,
				Active:          true,
				LastPaymentDate: arg.LastPaymentDate,
			}, nil
		})

	result, err := b.SubmitPayment(context.Background(), paymentRequest(customerID, []int64{1, 2}, "pay-key-1"))
	require.NoError(t, err)
	assert.False(t, result.Replayed)
	assert.Equal(t, int64(40), result.Submission.ID)
	assert.Equal(t, int64(10100), result.Submission.AmountCents)
	assert.Equal(t, []int64{1, 2}, result.Submission.BillingPeriodIDs)
	assert.Equal(t, "INV-202603-0007", result.Invoice.InvoiceNumber)
	require.Len(t, result.UpdatedPeriods, 2)
	for _, p := range result.UpdatedPeriods {
		assert.Equal(t, model.PeriodStatusPaid, p.Status)
	}
	assert.Nil(t, result.Customer.NextDueDate)
}

func TestSubmitPayment_DuplicateIDsAreDeduped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newPaymentMocks(ctrl)
	customerID := int64(5)
	selected := []periods.BillingPeriod{payablePeriod(1, customerID, 4900, "pending")}

	m.payments.EXPECT().
		GetSubmissionByIdempotencyKey(gomock.Any(), "pay-key-2").
		Return(payments.FeeSubmission{}, pgx.ErrNoRows)
	m.periods.EXPECT().
		ListPeriodsByIDs(gomock.Any(), []int64{1}).
		Return(selected, nil)
	m.lockPassthrough(customerID)
	m.periods.EXPECT().
		GetPeriodsForUpdate(gomock.Any(), []int64{1}).
		Return(selected, nil)
	m.payments.EXPECT().
		NextInvoiceSequence(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)
	m.payments.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(payments.Invoice{ID: 31}, nil)
	m.payments.EXPECT().
		CreateSubmission(gomock.Any(), gomock.Any()).
		Return(payments.FeeSubmission{ID: 41, CustomerID: customerID, InvoiceID: 31}, nil)
	m.payments.EXPECT().
		LinkSubmissionPeriods(gomock.Any(), gomock.Any()).
		Return(nil)
	m.periods.EXPECT().
		MarkPeriodsPaid(gomock.Any(), []int64{1}).
		Return(int64(1), nil)
	m.periods.EXPECT().
		EarliestOutstandingDueDate(gomock.Any(), customerID).
		Return(pgtype.Date{}, nil)
	m.customers.EXPECT().
		UpdateBillingProjection(gomock.Any(), gomock.Any()).
		Return(customers.Customer{ID: customerID}, nil)

	result, err := b.SubmitPayment(context.Background(), paymentRequest(customerID, []int64{1, 1, 1}, "pay-key-2"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, result.Submission.BillingPeriodIDs)
}

func TestSubmitPayment_EmptySelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, _ := newPaymentMocks(ctrl)

	result, err := b.SubmitPayment(context.Background(), paymentRequest(5, nil, "pay-key-3"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no billing periods selected")
	assert.Nil(t, result)
}

func TestSubmitPayment_ReplaysOnRepeatedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newPaymentMocks(ctrl)
	customerID := int64(5)

	existing := payments.FeeSubmission{
		ID:             40,
		CustomerID:     customerID,
		AmountCents:    4900,
		PaymentDate:    pgtype.Date{Time: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Valid: true},
		IdempotencyKey: "pay-key-4",
		InvoiceID:      30,
	}
	m.payments.EXPECT().
		GetSubmissionByIdempotencyKey(gomock.Any(), "pay-key-4").
		Return(existing, nil)
	m.payments.EXPECT().
		GetInvoice(gomock.Any(), int64(30)).
		Return(payments.Invoice{ID: 30, InvoiceNumber: "INV-202603-0007"}, nil)
	m.payments.EXPECT().
		GetSubmissionPeriodIDs(gomock.Any(), int64(40)).
		Return([]int64{1}, nil)
	m.periods.EXPECT().
		ListPeriodsByIDs(gomock.Any(), []int64{1}).
		Return([]periods.BillingPeriod{payablePeriod(1, customerID, 4900, "paid")}, nil)
	m.customers.EXPECT().
		GetCustomer(gomock.Any(), customerID).
		Return(customers.Customer{ID: customerID, Active: true}, nil)

	result, err := b.SubmitPayment(context.Background(), paymentRequest(customerID, []int64{1}, "pay-key-4"))
	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Equal(t, int64(40), result.Submission.ID)
	assert.Equal(t, "INV-202603-0007", result.Invoice.InvoiceNumber)
}

func TestSubmitPayment_SelectionValidation(t *testing.T) {
	customerID := int64(5)

	testCases := []struct {
		name          string
		preCheck      []periods.BillingPeriod
		expectedError string
	}{
		{
			name:          "unknown_period",
			preCheck:      nil,
			expectedError: "billing period 1 not found",
		},
		{
			name:          "period_of_other_customer",
			preCheck:      []periods.BillingPeriod{payablePeriod(1, 99, 4900, "pending")},
			expectedError: "billing period 1 belongs to a different customer",
		},
		{
			name:          "already_settled_period",
			preCheck:      []periods.BillingPeriod{payablePeriod(1, customerID, 4900, "paid")},
			expectedError: "billing period 1 is already settled",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, m := newPaymentMocks(ctrl)
			m.payments.EXPECT().
				GetSubmissionByIdempotencyKey(gomock.Any(), gomock.Any()).
				Return(payments.FeeSubmission{}, pgx.ErrNoRows)
			m.periods.EXPECT().
				ListPeriodsByIDs(gomock.Any(), []int64{1}).
				Return(tc.preCheck, nil)

			result, err := b.SubmitPayment(context.Background(), paymentRequest(customerID, []int64{1}, "pay-key-5"))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
			assert.Nil(t, result)
		})
	}
}

func TestSubmitPayment_ConcurrentSettlementAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newPaymentMocks(ctrl)
	customerID := int64(5)

	m.payments.EXPECT().
		GetSubmissionByIdempotencyKey(gomock.Any(), "pay-key-6").
		Return(payments.FeeSubmission{}, pgx.ErrNoRows)
	m.periods.EXPECT().
		ListPeriodsByIDs(gomock.Any(), []int64{1}).
		Return([]periods.BillingPeriod{payablePeriod(1, customerID, 4900, "pending")}, nil)
	m.lockPassthrough(customerID)
	// By the time the lock is held, the period was settled elsewhere.
	m.periods.EXPECT().
		GetPeriodsForUpdate(gomock.Any(), []int64{1}).
		Return([]periods.BillingPeriod{payablePeriod(1, customerID, 4900, "paid")}, nil)

	result, err := b.SubmitPayment(context.Background(), paymentRequest(customerID, []int64{1}, "pay-key-6"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "settled by a concurrent submission")
	assert.Nil(t, result)
}

func TestSubmitPayment_RacedKeyInsertFallsBackToReplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newPaymentMocks(ctrl)
	customerID := int64(5)
	selected := []periods.BillingPeriod{payablePeriod(1, customerID, 4900, "pending")}

	gomock.InOrder(
		m.payments.EXPECT().
			GetSubmissionByIdempotencyKey(gomock.Any(), "pay-key-7").
			Return(payments.FeeSubmission{}, pgx.ErrNoRows),
		m.payments.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			Return(payments.FeeSubmission{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation}),
		m.payments.EXPECT().
			GetSubmissionByIdempotencyKey(gomock.Any(), "pay-key-7").
			Return(payments.FeeSubmission{ID: 40, CustomerID: customerID, InvoiceID: 30, IdempotencyKey: "pay-key-7"}, nil),
	)
	m.periods.EXPECT().
		ListPeriodsByIDs(gomock.Any(), []int64{1}).
		Return(selected, nil).
		Times(2)
	m.lockPassthrough(customerID)
	m.periods.EXPECT().
		GetPeriodsForUpdate(gomock.Any(), []int64{1}).
		Return(selected, nil)
	m.payments.EXPECT().
		NextInvoiceSequence(gomock.Any(), gomock.Any()).
		Return(int64(8), nil)
	m.payments.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(payments.Invoice{ID: 99}, nil)
	m.payments.EXPECT().
		GetInvoice(gomock.Any(), int64(30)).
		Return(payments.Invoice{ID: 30}, nil)
	m.payments.EXPECT().
		GetSubmissionPeriodIDs(gomock.Any(), int64(40)).
		Return([]int64{1}, nil)
	m.customers.EXPECT().
		GetCustomer(gomock.Any(), customerID).
		Return(customers.Customer{ID: customerID}, nil)

	result, err := b.SubmitPayment(context.Background(), paymentRequest(customerID, []int64{1}, "pay-key-7"))
	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Equal(t, int64(40), result.Submission.ID)
}

func TestSubmitPayment_PartialSettleAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newPaymentMocks(ctrl)
	customerID := int64(5)
	selected := []periods.BillingPeriod{
		payablePeriod(1, customerID, 4900, "pending"),
		payablePeriod(2, customerID, 4900, "pending"),
	}

	m.payments.EXPECT().
		GetSubmissionByIdempotencyKey(gomock.Any(), "pay-key-8").
		Return(payments.FeeSubmission{}, pgx.ErrNoRows)
	m.periods.EXPECT().
		ListPeriodsByIDs(gomock.Any(), []int64{1, 2}).
		Return(selected, nil)
	m.lockPassthrough(customerID)
	m.periods.EXPECT().
		GetPeriodsForUpdate(gomock.Any(), []int64{1, 2}).
		Return(selected, nil)
	m.payments.EXPECT().
		NextInvoiceSequence(gomock.Any(), gomock.Any()).
		Return(int64(9), nil)
	m.payments.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(payments.Invoice{ID: 32}, nil)
	m.payments.EXPECT().
		CreateSubmission(gomock.Any(), gomock.Any()).
		Return(payments.FeeSubmission{ID: 42, CustomerID: customerID, InvoiceID: 32}, nil)
	m.payments.EXPECT().
		LinkSubmissionPeriods(gomock.Any(), gomock.Any()).
		Return(nil)
	m.periods.EXPECT().
		MarkPeriodsPaid(gomock.Any(), []int64{1, 2}).
		Return(int64(1), nil)

	result, err := b.SubmitPayment(context.Background(), paymentRequest(customerID, []int64{1, 2}, "pay-key-8"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "concurrent submission")
	assert.Nil(t, result)
}
