package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

type SweepRequest struct {
	// AsOf defaults to the current time when omitted.
	AsOf time.Time `json:"as_of"`
}

type SweepResponse struct {
	UpdatedCount       int     `json:"updated_count"`
	UpdatedCustomerIDs []int64 `json:"updated_customer_ids"`
}

//encore:api public path=/v1/periods/sweep method=POST
func (s *Service) Sweep(ctx context.Context, req *SweepRequest) (*SweepResponse, error) {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	result, err := s.periods.Sweep(ctx, asOf)
	if err != nil {
		rlog.Error("failed to sweep billing periods", "error", err)
		return nil, err
	}

	rlog.Info("overdue sweep completed",
		"updated_count", result.UpdatedCount,
		"customers", len(result.CustomerIDs),
	)

	return &SweepResponse{
		UpdatedCount:       result.UpdatedCount,
		UpdatedCustomerIDs: result.CustomerIDs,
	}, nil
}
