package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

// Ensure SplitService implements api.SplitServiceHandler
var _ api.SplitServiceHandler = (*SplitService)(nil)

// SplitService exposes the split allocator over Connect. It is stateless.
type SplitService struct{}

// NewSplitService creates a new SplitService.
func NewSplitService() *SplitService {
	return &SplitService{}
}

func parsePolicy(s string) (models.SplitPolicy, error) {
	policy, ok := models.ParseSplitPolicy(s)
	if !ok {
		return "", invalidArgument("unknown split policy %q", s)
	}
	return policy, nil
}

// CalculateSplits computes per-member shares and reports whether they are
// acceptable. Splits are returned even when validation fails so the caller
// can preview them.
func (s *SplitService) CalculateSplits(ctx context.Context, req *connect.Request[api.CalculateSplitsRequest]) (*connect.Response[api.CalculateSplitsResponse], error) {
	policy, err := parsePolicy(req.Msg.Policy)
	if err != nil {
		return nil, err
	}

	inputs := toCalcInputs(req.Msg.Inputs)
	for i, in := range inputs {
		slog.Debug("Processing split input",
			"index", i+1,
			"member_id", in.MemberID,
			"value", in.Value,
			"included", in.IsIncluded(),
		)
	}

	splits := calculator.CalculateSplits(req.Msg.Total, policy, inputs)
	result := calculator.ValidateSplits(req.Msg.Total, policy, inputs)

	slog.Debug("Splits calculated",
		"policy", policy,
		"total", req.Msg.Total,
		"splits_count", len(splits),
		"valid", result.Valid,
	)

	return connect.NewResponse(&api.CalculateSplitsResponse{
		Splits: toAPISplits(splits),
		Valid:  result.Valid,
		Error:  result.Error,
	}), nil
}

// ValidateSplits checks split inputs without computing them.
func (s *SplitService) ValidateSplits(ctx context.Context, req *connect.Request[api.ValidateSplitsRequest]) (*connect.Response[api.ValidateSplitsResponse], error) {
	policy, err := parsePolicy(req.Msg.Policy)
	if err != nil {
		return nil, err
	}

	result := calculator.ValidateSplits(req.Msg.Total, policy, toCalcInputs(req.Msg.Inputs))

	return connect.NewResponse(&api.ValidateSplitsResponse{
		Valid: result.Valid,
		Error: result.Error,
	}), nil
}

// DefaultSplitInputs seeds inputs for a policy.
func (s *SplitService) DefaultSplitInputs(ctx context.Context, req *connect.Request[api.DefaultSplitInputsRequest]) (*connect.Response[api.DefaultSplitInputsResponse], error) {
	policy, err := parsePolicy(req.Msg.Policy)
	if err != nil {
		return nil, err
	}

	inputs := calculator.DefaultSplitInputs(req.Msg.MemberIDs, policy)

	return connect.NewResponse(&api.DefaultSplitInputsResponse{
		Inputs: toAPIInputs(inputs),
	}), nil
}
