package override

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

	"encore.app/billing/mocks/repository/customer_repo"
	"encore.app/billing/mocks/repository/override_repo"
	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/overrides"
)

func TestCreateOverride(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOverrides := override_repo.NewMockQuerier(ctrl)
	mockCustomers := customer_repo.NewMockQuerier(ctrl)
	b := &business{overrideRepo: mockOverrides, customerRepo: mockCustomers}

	mockCustomers.EXPECT().
		GetCustomer(gomock.Any(), int64(5)).
		Return(customers.Customer{ID: 5}, nil)
	mockOverrides.EXPECT().
		CountOverlappingOverrides(gomock.Any(), gomock.Any()).
		Return(int64(0), nil)
	mockOverrides.EXPECT().
		CreateOverride(gomock.Any(), overrides.CreateOverrideParams{
			CustomerID:    5,
			AmountCents:   2500,
			EffectiveFrom: pgtype.Date{Time: from, Valid: true},
			EffectiveTo:   pgtype.Date{Time: to, Valid: true},
			Reason:        "student discount",
		}).
		Return(overrides.PriceOverride{
			ID:            9,
			CustomerID:    5,
			AmountCents:   2500,
			EffectiveFrom: pgtype.Date{Time: from, Valid: true},
			EffectiveTo:   pgtype.Date{Time: to, Valid: true},
			Reason:        "student discount",
		}, nil)

	result, err := b.CreateOverride(context.Background(), &model.PriceOverride{
		CustomerID:    5,
		AmountCents:   2500,
		EffectiveFrom: from,
		EffectiveTo:   &to,
		Reason:        "student discount",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.ID)
	assert.Equal(t, to, *result.EffectiveTo)
}

func TestCreateOverride_Failures(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	before := from.AddDate(0, 0, -1)

	testCases := []struct {
		name          string
		override      *model.PriceOverride
		setupMocks    func(or *override_repo.MockQuerier, cr *customer_repo.MockQuerier)
		expectedError string
	}{
		{
			name:     "unknown_customer",
			override: &model.PriceOverride{CustomerID: 404, AmountCents: 100, EffectiveFrom: from},
			setupMocks: func(or *override_repo.MockQuerier, cr *customer_repo.MockQuerier) {
				cr.EXPECT().
					GetCustomer(gomock.Any(), int64(404)).
					Return(customers.Customer{}, pgx.ErrNoRows)
			},
			expectedError: "customer not found",
		},
		{
			name: "inverted_range",
			override: &model.PriceOverride{
				CustomerID:    5,
				AmountCents:   100,
				EffectiveFrom: from,
				EffectiveTo:   &before,
			},
			setupMocks: func(or *override_repo.MockQuerier, cr *customer_repo.MockQuerier) {
				cr.EXPECT().
					GetCustomer(gomock.Any(), int64(5)).
					Return(customers.Customer{ID: 5}, nil)
			},
			expectedError: "effective_to must not precede effective_from",
		},
		{
			name:     "overlapping_range_rejected",
			override: &model.PriceOverride{CustomerID: 5, AmountCents: 100, EffectiveFrom: from},
			setupMocks: func(or *override_repo.MockQuerier, cr *customer_repo.MockQuerier) {
				cr.EXPECT().
					GetCustomer(gomock.Any(), int64(5)).
					Return(customers.Customer{ID: 5}, nil)
				or.EXPECT().
					CountOverlappingOverrides(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
			},
			expectedError: "overlaps an existing override",
		},
		{
			name:     "concurrent_overlap_hits_exclusion_constraint",
			override: &model.PriceOverride{CustomerID: 5, AmountCents: 100, EffectiveFrom: from},
			setupMocks: func(or *override_repo.MockQuerier, cr *customer_repo.MockQuerier) {
				cr.EXPECT().
					GetCustomer(gomock.Any(), int64(5)).
					Return(customers.Customer{ID: 5}, nil)
				or.EXPECT().
					CountOverlappingOverrides(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
				or.EXPECT().
					CreateOverride(gomock.Any(), gomock.Any()).
					Return(overrides.PriceOverride{}, &pgconn.PgError{Code: pgerrcode.ExclusionViolation})
			},
			expectedError: "overlaps an existing override",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOverrides := override_repo.NewMockQuerier(ctrl)
			mockCustomers := customer_repo.NewMockQuerier(ctrl)
			tc.setupMocks(mockOverrides, mockCustomers)

			b := &business{overrideRepo: mockOverrides, customerRepo: mockCustomers}

			result, err := b.CreateOverride(context.Background(), tc.override)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
			assert.Nil(t, result)
		})
	}
}
