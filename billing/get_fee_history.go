package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type GetFeeHistoryRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type GetFeeHistoryResponse struct {
	Submissions []model.FeeSubmission `json:"submissions"`
	TotalCount  int64                 `json:"total_count"`
	Limit       int                   `json:"limit"`
	Offset      int                   `json:"offset"`
}

//encore:api public path=/v1/customers/:id/fees/history method=GET
func (s *Service) GetFeeHistory(ctx context.Context, id int64, req *GetFeeHistoryRequest) (*GetFeeHistoryResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	submissions, totalCount, err := s.payments.GetFeeHistory(ctx, id, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to get fee history", "error", err, "customer_id", id)
		return nil, err
	}

	return &GetFeeHistoryResponse{
		Submissions: submissions,
		TotalCount:  totalCount,
		Limit:       req.Limit,
		Offset:      req.Offset,
	}, nil
}
