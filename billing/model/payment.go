package model

import (
	"time"
)

// FeeSubmission records one payment event settling one or more billing
// periods. Exactly one submission exists per idempotency key; the record
// is immutable once created.
type FeeSubmission struct {
	ID               int64     `json:"id"`
	CustomerID       int64     `json:"customer_id"`
	AmountCents      int64     `json:"amount_cents"`
	PaymentDate      time.Time `json:"payment_date"`
	PaymentMethod    string    `json:"payment_method"`
	Notes            *string   `json:"notes,omitempty"`
	IdempotencyKey   string    `json:"idempotency_key"`
	InvoiceID        int64     `json:"invoice_id"`
	BillingPeriodIDs []int64   `json:"billing_period_ids,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type Invoice struct {
	ID               int64     `json:"id"`
	InvoiceNumber    string    `json:"invoice_number"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	PaymentStatus    string    `json:"payment_status"`
	CreatedAt        time.Time `json:"created_at"`
}

const InvoiceStatusPaid = "paid"

// PaymentRequest is the reconciler's input.
type PaymentRequest struct {
	CustomerID       int64
	BillingPeriodIDs []int64
	PaymentDate      time.Time
	PaymentMethod    string
	Notes            *string
	IdempotencyKey   string
}

// PaymentResult is everything a caller needs after reconciliation.
// Replayed is true when the idempotency key matched an existing
// submission and no state was mutated.
type PaymentResult struct {
	Submission     FeeSubmission   `json:"fee_submission"`
	Invoice        Invoice         `json:"invoice"`
	UpdatedPeriods []BillingPeriod `json:"updated_periods"`
	Customer       Customer        `json:"updated_customer"`
	Replayed       bool            `json:"replayed"`
}
