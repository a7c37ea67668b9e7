package billing

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

type SubmitPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	CustomerID       int64     `json:"customer_id" validate:"required,min=1"`
	BillingPeriodIDs []int64   `json:"billing_period_ids" validate:"required,min=1,dive,min=1"`
	PaymentDate      time.Time `json:"payment_date"`
	PaymentMethod    string    `json:"payment_method" validate:"required,max=50"`
	Notes            *string   `json:"notes,omitempty" validate:"omitempty,max=255"`
}

type SubmitPaymentResponse struct {
	FeeSubmission  model.FeeSubmission   `json:"fee_submission"`
	Invoice        model.Invoice         `json:"invoice"`
	UpdatedPeriods []model.BillingPeriod `json:"updated_periods"`
	Customer       model.Customer        `json:"customer"`
}

//encore:api public path=/v1/payments method=POST tag:idempotency
func (s *Service) SubmitPayment(ctx context.Context, req *SubmitPaymentRequest) (*SubmitPaymentResponse, error) {
	if req.PaymentDate.IsZero() {
		req.PaymentDate = time.Now()
	}

	result, err := s.payments.SubmitPayment(ctx, &model.PaymentRequest{
		CustomerID:       req.CustomerID,
		BillingPeriodIDs: req.BillingPeriodIDs,
		PaymentDate:      req.PaymentDate,
		PaymentMethod:    req.PaymentMethod,
		Notes:            req.Notes,
		IdempotencyKey:   req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to submit payment", "error", err, "customer_id", req.CustomerID)
		return nil, err
	}

	// Signal the per-period workflows asynchronously - don't block the response.
	// Replays already signaled on the first pass.
	if !result.Replayed {
		runAsync("signal-payment-received", func(ctx context.Context) error {
			return s.signalPaymentReceived(ctx, result)
		})
	}

	return &SubmitPaymentResponse{
		FeeSubmission:  result.Submission,
		Invoice:        result.Invoice,
		UpdatedPeriods: result.UpdatedPeriods,
		Customer:       result.Customer,
	}, nil
}

// Validate implements validation for SubmitPaymentRequest using go-playground/validator
func (r *SubmitPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if !r.PaymentDate.IsZero() && r.PaymentDate.After(time.Now().Add(24*time.Hour)) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "payment_date must not be in the future"}
	}

	return nil
}

// signalPaymentReceived notifies the lifecycle workflow of every settled
// period so pending reminder timers stop. A workflow that already completed
// is not an error worth surfacing.
func (s *Service) signalPaymentReceived(ctx context.Context, result *model.PaymentResult) error {
	signal := workflow.PaymentReceivedSignal{
		FeeSubmissionID: result.Submission.ID,
	}

	var firstErr error
	for _, period := range result.UpdatedPeriods {
		workflowID := fmt.Sprintf("billing-period-%d", period.ID)
		if err := s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.PaymentReceivedSignalName, signal); err != nil {
			rlog.Error("failed to signal workflow", "error", err, "workflow_id", workflowID)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
