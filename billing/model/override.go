package model

import (
	"time"
)

// PriceOverride is a time-bounded custom fee for one customer. A nil
// EffectiveTo means open-ended. Overrides only influence periods created
// after they take effect; an existing period's amount never changes.
type PriceOverride struct {
	ID            int64      `json:"id"`
	CustomerID    int64      `json:"customer_id"`
	AmountCents   int64      `json:"amount_cents"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	Reason        string     `json:"reason"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Contains reports whether the override's inclusive date range covers on.
func (o *PriceOverride) Contains(on time.Time) bool {
	day := time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(o.EffectiveFrom) {
		return false
	}
	if o.EffectiveTo == nil {
		return true
	}
	return !day.After(*o.EffectiveTo)
}
