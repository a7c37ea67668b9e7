package period

import (
	"context"
	"time"

	"encore.app/billing/business/pricing"
	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/periods"
)

type Business interface {
	// EnsureNextPeriod creates the next pending period for a customer when
	// none is outstanding. The bool result is true when a period was created.
	EnsureNextPeriod(ctx context.Context, customerID int64) (*model.BillingPeriod, bool, error)

	// Sweep flips every pending period whose due date has passed to overdue
	// and refreshes days-overdue on periods already overdue.
	Sweep(ctx context.Context, asOf time.Time) (*model.SweepResult, error)

	// MarkOverdue is the single-period sweep used by the lifecycle workflow.
	MarkOverdue(ctx context.Context, periodID int64, asOf time.Time) error

	GetBillingPeriods(ctx context.Context, customerID int64, asOf time.Time) ([]model.BillingPeriod, error)
}

// business handles billing period generation and overdue detection
type business struct {
	customerRepo customers.Querier
	periodRepo   periods.Querier
	pricing      pricing.Business
	stateMachine domain.StateMachine
}

func NewPeriodBusiness(
	customerRepo customers.Querier,
	periodRepo periods.Querier,
	pricingBusiness pricing.Business,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		customerRepo: customerRepo,
		periodRepo:   periodRepo,
		pricing:      pricingBusiness,
		stateMachine: stateMachine,
	}
}

// convertDBPeriodToModel converts a database BillingPeriod to a domain model BillingPeriod
func convertDBPeriodToModel(dbPeriod periods.BillingPeriod) *model.BillingPeriod {
	return &model.BillingPeriod{
		ID:          dbPeriod.ID,
		CustomerID:  dbPeriod.CustomerID,
		DueDate:     dbPeriod.DueDate.Time,
		AmountCents: dbPeriod.AmountCents,
		Status:      model.PeriodStatus(dbPeriod.Status),
		DaysOverdue: dbPeriod.DaysOverdue,
		CreatedAt:   dbPeriod.CreatedAt.Time,
		UpdatedAt:   dbPeriod.UpdatedAt.Time,
	}
}
