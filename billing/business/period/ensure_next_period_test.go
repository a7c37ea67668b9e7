package period

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/domain"
	"encore.app/billing/mocks/business/pricing_business"
	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/repository/customer_repo"
	"encore.app/billing/mocks/repository/period_repo"
	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/periods"
)

// lockPassthrough wires the mocked state machine to invoke the business
// callback directly with transaction-bound mock repositories.
func lockPassthrough(sm *state_machine.MockStateMachine, repos domain.TxRepos, customer customers.Customer) {
	sm.EXPECT().
		WithCustomerLock(gomock.Any(), customer.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fn func(domain.TxRepos, customers.Customer) error) error {
			return fn(repos, customer)
		})
}

func activeCustomer(id int64, registered time.Time) customers.Customer {
	return customers.Customer{
		ID:               id,
		RegistrationDate: pgtype.Date{Time: registered, Valid: true},
		Active:           true,
	}
}

func TestEnsureNextPeriod_CreatesPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPeriods := period_repo.NewMockQuerier(ctrl)
	mockCustomers := customer_repo.NewMockQuerier(ctrl)
	mockPricing := pricing_business.NewMockBusiness(ctrl)
	mockSM := state_machine.NewMockStateMachine(ctrl)

	registered := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	customer := activeCustomer(5, registered)
	repos := domain.TxRepos{Customers: mockCustomers, Periods: mockPeriods}
	lockPassthrough(mockSM, repos, customer)

	mockPeriods.EXPECT().
		GetOutstandingPeriod(gomock.Any(), int64(5)).
		Return(periods.BillingPeriod{}, pgx.ErrNoRows)
	mockPeriods.EXPECT().
		LatestDueDate(gomock.Any(), int64(5)).
		Return(pgtype.Date{}, pgx.ErrNoRows)

	wantDue := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	mockPricing.EXPECT().
		ResolveAmount(gomock.Any(), int64(5), wantDue).
		Return(int64(4900), nil)

	mockPeriods.EXPECT().
		CreatePeriod(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg periods.CreatePeriodParams) (periods.BillingPeriod, error) {
			assert.Equal(t, wantDue, arg.DueDate.Time)
			assert.Equal(t, int64(4900), arg.AmountCents)
			assert.Equal(t, "pending", arg.Status)
			return periods.BillingPeriod{
				ID:          11,
				CustomerID:  5,
				DueDate:     arg.DueDate,
				AmountCents: arg.AmountCents,
				Status:      arg.Status,
			}, nil
		})
	mockCustomers.EXPECT().
		SetNextDueDate(gomock.Any(), customers.SetNextDueDateParams{
			ID:          5,
			NextDueDate: pgtype.Date{Time: wantDue, Valid: true},
		}).
		Return(nil)

	business := &business{
		customerRepo: mockCustomers,
		periodRepo:   mockPeriods,
		pricing:      mockPricing,
		stateMachine: mockSM,
	}

	result, created, err := business.EnsureNextPeriod(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(11), result.ID)
	assert.Equal(t, wantDue, result.DueDate)
	assert.Equal(t, model.PeriodStatusPending, result.Status)
}

func TestEnsureNextPeriod_DueDateAnchors(t *testing.T) {
	registered := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		latestDue   pgtype.Date
		lastPayment pgtype.Date
		wantDue     time.Time
	}{
		{
			name:    "first_period_from_registration",
			wantDue: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "advances_from_latest_period",
			latestDue: pgtype.Date{Time: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Valid: true},
			wantDue:   time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "late_payment_pushes_anchor",
			latestDue:   pgtype.Date{Time: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Valid: true},
			lastPayment: pgtype.Date{Time: time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC), Valid: true},
			wantDue:     time.Date(2026, 4, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPeriods := period_repo.NewMockQuerier(ctrl)
			mockCustomers := customer_repo.NewMockQuerier(ctrl)
			mockPricing := pricing_business.NewMockBusiness(ctrl)
			mockSM := state_machine.NewMockStateMachine(ctrl)

			customer := activeCustomer(5, registered)
			customer.LastPaymentDate = tc.lastPayment
			repos := domain.TxRepos{Customers: mockCustomers, Periods: mockPeriods}
			lockPassthrough(mockSM, repos, customer)

			mockPeriods.EXPECT().
				GetOutstandingPeriod(gomock.Any(), int64(5)).
				Return(periods.BillingPeriod{}, pgx.ErrNoRows)
			latestErr := error(pgx.ErrNoRows)
			if tc.latestDue.Valid {
				latestErr = nil
			}
			mockPeriods.EXPECT().
				LatestDueDate(gomock.Any(), int64(5)).
				Return(tc.latestDue, latestErr)
			mockPricing.EXPECT().
				ResolveAmount(gomock.Any(), int64(5), tc.wantDue).
				Return(int64(1000), nil)
			mockPeriods.EXPECT().
				CreatePeriod(gomock.Any(), gomock.Any()).
				Return(periods.BillingPeriod{ID: 1, CustomerID: 5, Status: "pending"}, nil)
			mockCustomers.EXPECT().
				SetNextDueDate(gomock.Any(), gomock.Any()).
				Return(nil)

			business := &business{
				customerRepo: mockCustomers,
				periodRepo:   mockPeriods,
				pricing:      mockPricing,
				stateMachine: mockSM,
			}

			_, created, err := business.EnsureNextPeriod(context.Background(), 5)
			assert.NoError(t, err)
			assert.True(t, created)
		})
	}
}

func TestEnsureNextPeriod_OutstandingPeriodIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPeriods := period_repo.NewMockQuerier(ctrl)
	mockCustomers := customer_repo.NewMockQuerier(ctrl)
	mockPricing := pricing_business.NewMockBusiness(ctrl)
	mockSM := state_machine.NewMockStateMachine(ctrl)

	customer := activeCustomer(7, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	repos := domain.TxRepos{Customers: mockCustomers, Periods: mockPeriods}
	lockPassthrough(mockSM, repos, customer)

	existing := periods.BillingPeriod{
		ID:         3,
		CustomerID: 7,
		DueDate:    pgtype.Date{Time: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		Status:     "overdue",
	}
	mockPeriods.EXPECT().
		GetOutstandingPeriod(gomock.Any(), int64(7)).
		Return(existing, nil)

	business := &business{
		customerRepo: mockCustomers,
		periodRepo:   mockPeriods,
		pricing:      mockPricing,
		stateMachine: mockSM,
	}

	result, created, err := business.EnsureNextPeriod(context.Background(), 7)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(3), result.ID)
	assert.Equal(t, model.PeriodStatusOverdue, result.Status)
}

func TestEnsureNextPeriod_InactiveCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPeriods := period_repo.NewMockQuerier(ctrl)
	mockCustomers := customer_repo.NewMockQuerier(ctrl)
	mockPricing := pricing_business.NewMockBusiness(ctrl)
	mockSM := state_machine.NewMockStateMachine(ctrl)

	customer := activeCustomer(8, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	customer.Active = false
	lockPassthrough(mockSM, domain.TxRepos{Customers: mockCustomers, Periods: mockPeriods}, customer)

	business := &business{
		customerRepo: mockCustomers,
		periodRepo:   mockPeriods,
		pricing:      mockPricing,
		stateMachine: mockSM,
	}

	result, created, err := business.EnsureNextPeriod(context.Background(), 8)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "membership is inactive")
	assert.Nil(t, result)
	assert.False(t, created)
}

func TestEnsureNextPeriod_UndeterminedPricingCreatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPeriods := period_repo.NewMockQuerier(ctrl)
	mockCustomers := customer_repo.NewMockQuerier(ctrl)
	mockPricing := pricing_business.NewMockBusiness(ctrl)
	mockSM := state_machine.NewMockStateMachine(ctrl)

	customer := activeCustomer(9, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	lockPassthrough(mockSM, domain.TxRepos{Customers: mockCustomers, Periods: mockPeriods}, customer)

	mockPeriods.EXPECT().
		GetOutstandingPeriod(gomock.Any(), int64(9)).
		Return(periods.BillingPeriod{}, pgx.ErrNoRows)
	mockPeriods.EXPECT().
		LatestDueDate(gomock.Any(), int64(9)).
		Return(pgtype.Date{}, pgx.ErrNoRows)
	mockPricing.EXPECT().
		ResolveAmount(gomock.Any(), int64(9), gomock.Any()).
		Return(int64(0), assert.AnError)

	business := &business{
		customerRepo: mockCustomers,
		periodRepo:   mockPeriods,
		pricing:      mockPricing,
		stateMachine: mockSM,
	}

	// No CreatePeriod or SetNextDueDate expectations: the pricing error
	// must abort before any write.
	result, created, err := business.EnsureNextPeriod(context.Background(), 9)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, created)
}

func TestEnsureNextPeriod_ConcurrentCreateFallsBackToExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPeriods := period_repo.NewMockQuerier(ctrl)
	mockCustomers := customer_repo.NewMockQuerier(ctrl)
	mockPricing := pricing_business.NewMockBusiness(ctrl)
	mockSM := state_machine.NewMockStateMachine(ctrl)

	customer := activeCustomer(10, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	lockPassthrough(mockSM, domain.TxRepos{Customers: mockCustomers, Periods: mockPeriods}, customer)

	existing := periods.BillingPeriod{ID: 21, CustomerID: 10, Status: "pending"}
	gomock.InOrder(
		mockPeriods.EXPECT().
			GetOutstandingPeriod(gomock.Any(), int64(10)).
			Return(periods.BillingPeriod{}, pgx.ErrNoRows),
		mockPeriods.EXPECT().
			LatestDueDate(gomock.Any(), int64(10)).
			Return(pgtype.Date{}, pgx.ErrNoRows),
		mockPeriods.EXPECT().
			CreatePeriod(gomock.Any(), gomock.Any()).
			Return(periods.BillingPeriod{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation}),
		mockPeriods.EXPECT().
			GetOutstandingPeriod(gomock.Any(), int64(10)).
			Return(existing, nil),
	)
	mockPricing.EXPECT().
		ResolveAmount(gomock.Any(), int64(10), gomock.Any()).
		Return(int64(1000), nil)

	business := &business{
		customerRepo: mockCustomers,
		periodRepo:   mockPeriods,
		pricing:      mockPricing,
		stateMachine: mockSM,
	}

	result, created, err := business.EnsureNextPeriod(context.Background(), 10)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(21), result.ID)
}
