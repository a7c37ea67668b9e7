package model

import (
	"time"
)

// Customer carries only the billing-related projection of a customer.
// Identity and the rest of the profile live in the customer directory.
type Customer struct {
	ID               int64      `json:"id"`
	PlanID           *int64     `json:"plan_id,omitempty"`
	RegistrationDate time.Time  `json:"registration_date"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`
	LastPaymentDate  *time.Time `json:"last_payment_date,omitempty"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type Plan struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	MonthlyFeeCents      int64     `json:"monthly_fee_cents"`
	RegistrationFeeCents int64     `json:"registration_fee_cents"`
	CreatedAt            time.Time `json:"created_at"`
}

// FeeStatus is the read projection backing the customer fee dashboard.
type FeeStatus struct {
	CustomerID         int64      `json:"customer_id"`
	NextDueDate        *time.Time `json:"next_due_date,omitempty"`
	LastPaymentDate    *time.Time `json:"last_payment_date,omitempty"`
	CurrentAmountCents int64      `json:"current_amount_cents"`
	Active             bool       `json:"active"`
}
