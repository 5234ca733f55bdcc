package service

import (
	"context"
	"math"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

func TestCalculateSplits(t *testing.T) {
	client, _ := setupTestServer(t)

	tests := []struct {
		name      string
		total     float64
		policy    string
		inputs    []api.SplitInput
		want      []float64
		wantValid bool
		wantError string
	}{
		{
			name:   "equal three ways",
			total:  90,
			policy: "equal",
			inputs: []api.SplitInput{
				{MemberID: "a"}, {MemberID: "b"}, {MemberID: "c"},
			},
			want:      []float64{30, 30, 30},
			wantValid: true,
		},
		{
			name:   "equal with excluded member",
			total:  90,
			policy: "equal",
			inputs: []api.SplitInput{
				{MemberID: "a"}, {MemberID: "b", Included: boolPtr(false)}, {MemberID: "c"},
			},
			want:      []float64{45, 0, 45},
			wantValid: true,
		},
		{
			name:   "percentage",
			total:  200,
			policy: "percentage",
			inputs: []api.SplitInput{
				{MemberID: "a", Value: 25}, {MemberID: "b", Value: 75},
			},
			want:      []float64{50, 150},
			wantValid: true,
		},
		{
			name:   "shares",
			total:  90,
			policy: "shares",
			inputs: []api.SplitInput{
				{MemberID: "a", Value: 2}, {MemberID: "b", Value: 1},
			},
			want:      []float64{60, 30},
			wantValid: true,
		},
		{
			name:   "exact mismatch still returns splits",
			total:  100,
			policy: "exact",
			inputs: []api.SplitInput{
				{MemberID: "a", Value: 40}, {MemberID: "b", Value: 50},
			},
			want:      []float64{40, 50},
			wantValid: false,
			wantError: "Amounts must total $100.00 (currently $90.00)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.CalculateSplits(context.Background(), connect.NewRequest(&api.CalculateSplitsRequest{
				Total:  tt.total,
				Policy: tt.policy,
				Inputs: tt.inputs,
			}))
			if err != nil {
				t.Fatalf("CalculateSplits failed: %v", err)
			}

			if resp.Msg.Valid != tt.wantValid {
				t.Errorf("expected valid=%v, got %v", tt.wantValid, resp.Msg.Valid)
			}
			if resp.Msg.Error != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, resp.Msg.Error)
			}
			if len(resp.Msg.Splits) != len(tt.want) {
				t.Fatalf("expected %d splits, got %d", len(tt.want), len(resp.Msg.Splits))
			}
			for i, split := range resp.Msg.Splits {
				if split.MemberID != tt.inputs[i].MemberID {
					t.Errorf("split %d: expected member %s, got %s", i, tt.inputs[i].MemberID, split.MemberID)
				}
				if math.Abs(split.Amount-tt.want[i]) > 0.01 {
					t.Errorf("split %d: expected %.2f, got %.2f", i, tt.want[i], split.Amount)
				}
			}
		})
	}
}

func TestCalculateSplits_EchoesShares(t *testing.T) {
	client, _ := setupTestServer(t)

	resp, err := client.CalculateSplits(context.Background(), connect.NewRequest(&api.CalculateSplitsRequest{
		Total:  30,
		Policy: "shares",
		Inputs: []api.SplitInput{{MemberID: "a", Value: 1}, {MemberID: "b", Value: 2}},
	}))
	if err != nil {
		t.Fatalf("CalculateSplits failed: %v", err)
	}

	got := resp.Msg.Splits[1]
	if got.Shares == nil || *got.Shares != 2 {
		t.Errorf("expected shares 2 echoed back, got %v", got.Shares)
	}
	if got.Percentage != nil {
		t.Errorf("expected no percentage on a shares split, got %v", *got.Percentage)
	}
}

func TestCalculateSplits_UnknownPolicy(t *testing.T) {
	client, _ := setupTestServer(t)

	_, err := client.CalculateSplits(context.Background(), connect.NewRequest(&api.CalculateSplitsRequest{
		Total:  10,
		Policy: "itemized",
		Inputs: []api.SplitInput{{MemberID: "a"}},
	}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestCalculateSplits_MissingPolicy(t *testing.T) {
	client, _ := setupTestServer(t)

	_, err := client.CalculateSplits(context.Background(), connect.NewRequest(&api.CalculateSplitsRequest{
		Total:  10,
		Inputs: []api.SplitInput{{MemberID: "a"}},
	}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestValidateSplits(t *testing.T) {
	client, _ := setupTestServer(t)

	tests := []struct {
		name      string
		policy    string
		inputs    []api.SplitInput
		wantValid bool
		wantError string
	}{
		{
			name:      "percentages under 100",
			policy:    "percentage",
			inputs:    []api.SplitInput{{MemberID: "a", Value: 60}, {MemberID: "b", Value: 30}},
			wantError: "Percentages must total 100% (currently 90.0%)",
		},
		{
			name:      "nobody included",
			policy:    "equal",
			inputs:    []api.SplitInput{{MemberID: "a", Included: boolPtr(false)}},
			wantError: "At least one member must be included in the split",
		},
		{
			name:      "negative shares",
			policy:    "shares",
			inputs:    []api.SplitInput{{MemberID: "a", Value: 3}, {MemberID: "b", Value: -1}},
			wantError: "Shares cannot be negative",
		},
		{
			name:      "zero shares",
			policy:    "shares",
			inputs:    []api.SplitInput{{MemberID: "a"}, {MemberID: "b"}},
			wantError: "Total shares must be greater than 0",
		},
		{
			name:      "exact within tolerance",
			policy:    "exact",
			inputs:    []api.SplitInput{{MemberID: "a", Value: 33.33}, {MemberID: "b", Value: 66.67}},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.ValidateSplits(context.Background(), connect.NewRequest(&api.ValidateSplitsRequest{
				Total:  100,
				Policy: tt.policy,
				Inputs: tt.inputs,
			}))
			if err != nil {
				t.Fatalf("ValidateSplits failed: %v", err)
			}
			if resp.Msg.Valid != tt.wantValid {
				t.Errorf("expected valid=%v, got %v", tt.wantValid, resp.Msg.Valid)
			}
			if resp.Msg.Error != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, resp.Msg.Error)
			}
		})
	}
}

func TestDefaultSplitInputs(t *testing.T) {
	client, _ := setupTestServer(t)

	tests := []struct {
		policy string
		want   float64
	}{
		{"percentage", 25},
		{"exact", 0},
		{"shares", 1},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			resp, err := client.DefaultSplitInputs(context.Background(), connect.NewRequest(&api.DefaultSplitInputsRequest{
				MemberIDs: []string{"a", "b", "c", "d"},
				Policy:    tt.policy,
			}))
			if err != nil {
				t.Fatalf("DefaultSplitInputs failed: %v", err)
			}
			if len(resp.Msg.Inputs) != 4 {
				t.Fatalf("expected 4 inputs, got %d", len(resp.Msg.Inputs))
			}
			for _, in := range resp.Msg.Inputs {
				if math.Abs(in.Value-tt.want) > 0.01 {
					t.Errorf("member %s: expected %.2f, got %.2f", in.MemberID, tt.want, in.Value)
				}
			}
		})
	}

	t.Run("equal includes everyone", func(t *testing.T) {
		resp, err := client.DefaultSplitInputs(context.Background(), connect.NewRequest(&api.DefaultSplitInputsRequest{
			MemberIDs: []string{"a", "b"},
			Policy:    "equal",
		}))
		if err != nil {
			t.Fatalf("DefaultSplitInputs failed: %v", err)
		}
		for _, in := range resp.Msg.Inputs {
			if in.Included == nil || !*in.Included {
				t.Errorf("member %s: expected included", in.MemberID)
			}
		}
	})
}
