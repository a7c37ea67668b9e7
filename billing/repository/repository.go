package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/overrides"
	"encore.app/billing/repository/payments"
	"encore.app/billing/repository/periods"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Customers customers.Querier
	Periods   periods.Querier
	Overrides overrides.Querier
	Payments  payments.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Customers: customers.New(db),
		Periods:   periods.New(db),
		Overrides: overrides.New(db),
		Payments:  payments.New(db),
	}
}
