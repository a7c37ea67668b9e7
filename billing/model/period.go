package model

import (
	"time"
)

type BillingPeriod struct {
	ID          int64        `json:"id"`
	CustomerID  int64        `json:"customer_id"`
	DueDate     time.Time    `json:"due_date"`
	AmountCents int64        `json:"amount_cents"`
	Status      PeriodStatus `json:"status"`
	DaysOverdue int32        `json:"days_overdue"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type PeriodStatus string

const (
	PeriodStatusPending PeriodStatus = "pending"
	PeriodStatusOverdue PeriodStatus = "overdue"
	PeriodStatusPaid    PeriodStatus = "paid"
)

// Payable reports whether a payment may still settle this period.
// The sweeper's pending->overdue transition never makes a period unpayable.
func (s PeriodStatus) Payable() bool {
	return s == PeriodStatusPending || s == PeriodStatusOverdue
}

// SweepResult summarizes one sweeper pass.
type SweepResult struct {
	UpdatedCount int       `json:"updated_count"`
	CustomerIDs  []int64   `json:"updated_customer_ids"`
	SweptAt      time.Time `json:"swept_at"`
}

// DaysOverdue returns the whole days elapsed between dueDate and asOf,
// floored, and never negative. Both arguments are treated as calendar
// dates in UTC.
func DaysOverdue(dueDate, asOf time.Time) int32 {
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	days := int32(now.Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
