package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/splitledger/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func inputs(values ...float64) []SplitInput {
	ids := []string{"alice", "bob", "charlie", "diana", "eve"}
	out := make([]SplitInput, len(values))
	for i, v := range values {
		out[i] = SplitInput{MemberID: ids[i], Value: v}
	}
	return out
}

func amounts(splits []models.Split) []float64 {
	out := make([]float64, len(splits))
	for i, s := range splits {
		out[i] = s.Amount
	}
	return out
}

func TestCalculateSplits(t *testing.T) {
	tests := []struct {
		name   string
		total  float64
		policy models.SplitPolicy
		inputs []SplitInput
		want   []float64
	}{
		{
			name:   "equal among all members",
			total:  90,
			policy: models.SplitEqual,
			inputs: inputs(0, 0, 0),
			want:   []float64{30, 30, 30},
		},
		{
			name:   "equal with excluded member",
			total:  100,
			policy: models.SplitEqual,
			inputs: []SplitInput{
				{MemberID: "alice", Included: boolPtr(true)},
				{MemberID: "bob", Included: boolPtr(false)},
				{MemberID: "charlie"},
			},
			want: []float64{50, 0, 50},
		},
		{
			name:   "equal with nobody included",
			total:  100,
			policy: models.SplitEqual,
			inputs: []SplitInput{
				{MemberID: "alice", Included: boolPtr(false)},
				{MemberID: "bob", Included: boolPtr(false)},
			},
			want: []float64{0, 0},
		},
		{
			name:   "percentage 60/40",
			total:  100,
			policy: models.SplitPercentage,
			inputs: inputs(60, 40),
			want:   []float64{60, 40},
		},
		{
			name:   "percentage of non-round total",
			total:  45.5,
			policy: models.SplitPercentage,
			inputs: inputs(50, 25, 25),
			want:   []float64{22.75, 11.375, 11.375},
		},
		{
			name:   "exact amounts verbatim",
			total:  100,
			policy: models.SplitExact,
			inputs: inputs(99.99, 0.01),
			want:   []float64{99.99, 0.01},
		},
		{
			name:   "shares 2:1",
			total:  90,
			policy: models.SplitShares,
			inputs: inputs(2, 1),
			want:   []float64{60, 30},
		},
		{
			name:   "zero total shares",
			total:  90,
			policy: models.SplitShares,
			inputs: inputs(0, 0),
			want:   []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits := CalculateSplits(tt.total, tt.policy, tt.inputs)
			if len(splits) != len(tt.want) {
				t.Fatalf("got %d splits, want %d", len(splits), len(tt.want))
			}
			for i, s := range splits {
				if s.MemberID != tt.inputs[i].MemberID {
					t.Errorf("split %d member = %s, want %s", i, s.MemberID, tt.inputs[i].MemberID)
				}
				if math.Abs(s.Amount-tt.want[i]) > 1e-9 {
					t.Errorf("split %d amount = %v, want %v", i, s.Amount, tt.want[i])
				}
			}
		})
	}
}

func TestCalculateSplits_EchoesPolicyValues(t *testing.T) {
	pct := CalculateSplits(200, models.SplitPercentage, inputs(75, 25))
	if pct[0].Percentage == nil || *pct[0].Percentage != 75 {
		t.Errorf("percentage not echoed: %+v", pct[0])
	}
	if pct[0].Shares != nil {
		t.Errorf("shares should be nil for percentage split")
	}

	shares := CalculateSplits(30, models.SplitShares, inputs(3, 0))
	if shares[1].Shares == nil || *shares[1].Shares != 0 {
		t.Errorf("shares not echoed: %+v", shares[1])
	}
	if shares[0].Percentage != nil {
		t.Errorf("percentage should be nil for shares split")
	}

	for _, s := range CalculateSplits(30, models.SplitEqual, inputs(0, 0)) {
		if s.Percentage != nil || s.Shares != nil {
			t.Errorf("equal split should echo nothing: %+v", s)
		}
	}
}

func TestCalculateSplits_EqualSumsToTotal(t *testing.T) {
	for n := 1; n <= 5; n++ {
		in := inputs(make([]float64, n)...)
		got := SumSplits(CalculateSplits(100, models.SplitEqual, in))
		if math.Abs(got-100) > Epsilon {
			t.Errorf("n=%d: sum = %v, want 100", n, got)
		}
	}
}

func TestCalculateSplits_UnknownPolicy(t *testing.T) {
	if got := CalculateSplits(100, models.SplitPolicy("bogus"), inputs(1, 2)); len(got) != 0 {
		t.Errorf("expected no splits, got %v", amounts(got))
	}
}

func TestCalculateSplits_NaNValuesTreatedAsZero(t *testing.T) {
	got := CalculateSplits(10, models.SplitExact, inputs(math.NaN(), 10))
	if got[0].Amount != 0 || got[1].Amount != 10 {
		t.Errorf("got %v, want [0 10]", amounts(got))
	}
}

func TestValidateSplits(t *testing.T) {
	tests := []struct {
		name      string
		total     float64
		policy    models.SplitPolicy
		inputs    []SplitInput
		wantValid bool
		wantError string
	}{
		{
			name:      "empty inputs",
			total:     100,
			policy:    models.SplitEqual,
			inputs:    nil,
			wantError: "At least one member must be included in the split",
		},
		{
			name:      "equal with one included",
			total:     100,
			policy:    models.SplitEqual,
			inputs:    []SplitInput{{MemberID: "alice", Included: boolPtr(false)}, {MemberID: "bob"}},
			wantValid: true,
		},
		{
			name:      "equal with nobody included",
			total:     100,
			policy:    models.SplitEqual,
			inputs:    []SplitInput{{MemberID: "alice", Included: boolPtr(false)}},
			wantError: "At least one member must be included in the split",
		},
		{
			name:      "percentage totals 100",
			total:     100,
			policy:    models.SplitPercentage,
			inputs:    inputs(33.33, 33.33, 33.34),
			wantValid: true,
		},
		{
			name:      "percentage within tolerance",
			total:     100,
			policy:    models.SplitPercentage,
			inputs:    inputs(33.333, 33.333, 33.333),
			wantValid: true,
		},
		{
			name:      "percentage short",
			total:     100,
			policy:    models.SplitPercentage,
			inputs:    inputs(50, 40),
			wantError: "Percentages must total 100% (currently 90.0%)",
		},
		{
			name:      "exact matches total",
			total:     100,
			policy:    models.SplitExact,
			inputs:    inputs(99.99, 0.01),
			wantValid: true,
		},
		{
			name:      "exact mismatch",
			total:     100,
			policy:    models.SplitExact,
			inputs:    inputs(50, 25.5),
			wantError: "Amounts must total $100.00 (currently $75.50)",
		},
		{
			name:      "shares positive",
			total:     90,
			policy:    models.SplitShares,
			inputs:    inputs(2, 1, 0),
			wantValid: true,
		},
		{
			name:      "shares all zero",
			total:     90,
			policy:    models.SplitShares,
			inputs:    inputs(0, 0),
			wantError: "Total shares must be greater than 0",
		},
		{
			name:      "shares negative",
			total:     90,
			policy:    models.SplitShares,
			inputs:    inputs(3, -1),
			wantError: "Shares cannot be negative",
		},
		{
			name:      "unknown policy",
			total:     90,
			policy:    models.SplitPolicy("weighted"),
			inputs:    inputs(1),
			wantError: "Invalid split type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSplits(tt.total, tt.policy, tt.inputs)
			if got.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (error %q)", got.Valid, tt.wantValid, got.Error)
			}
			if got.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", got.Error, tt.wantError)
			}
		})
	}
}

func TestValidatedSplitsReconcile(t *testing.T) {
	cases := []struct {
		policy models.SplitPolicy
		inputs []SplitInput
	}{
		{models.SplitEqual, inputs(0, 0, 0)},
		{models.SplitPercentage, inputs(20, 30, 50)},
		{models.SplitExact, inputs(10, 20, 43.21)},
		{models.SplitShares, inputs(1, 2, 4)},
	}
	for _, c := range cases {
		total := 73.21
		if v := ValidateSplits(total, c.policy, c.inputs); !v.Valid {
			t.Fatalf("%s: unexpected validation error %q", c.policy, v.Error)
		}
		sum := SumSplits(CalculateSplits(total, c.policy, c.inputs))
		if math.Abs(sum-total) > Epsilon {
			t.Errorf("%s: splits sum to %v, want %v", c.policy, sum, total)
		}
	}
}

func TestDefaultSplitInputs(t *testing.T) {
	members := []string{"alice", "bob", "charlie", "diana"}

	t.Run("equal includes everyone", func(t *testing.T) {
		for i, in := range DefaultSplitInputs(members, models.SplitEqual) {
			if in.MemberID != members[i] || in.Included == nil || !*in.Included || in.Value != 0 {
				t.Errorf("input %d = %+v", i, in)
			}
		}
	})

	t.Run("percentage split evenly", func(t *testing.T) {
		for _, in := range DefaultSplitInputs(members, models.SplitPercentage) {
			if in.Value != 25 {
				t.Errorf("value = %v, want 25", in.Value)
			}
		}
	})

	t.Run("percentage thirds are not rebalanced", func(t *testing.T) {
		got := DefaultSplitInputs(members[:3], models.SplitPercentage)
		if math.Abs(got[0].Value-100.0/3) > 1e-12 {
			t.Errorf("value = %v, want 33.33...", got[0].Value)
		}
	})

	t.Run("exact zero", func(t *testing.T) {
		for _, in := range DefaultSplitInputs(members, models.SplitExact) {
			if in.Value != 0 || in.Included != nil {
				t.Errorf("input = %+v", in)
			}
		}
	})

	t.Run("one share each", func(t *testing.T) {
		for _, in := range DefaultSplitInputs(members, models.SplitShares) {
			if in.Value != 1 {
				t.Errorf("value = %v, want 1", in.Value)
			}
		}
	})

	t.Run("no members", func(t *testing.T) {
		if got := DefaultSplitInputs(nil, models.SplitPercentage); len(got) != 0 {
			t.Errorf("expected no inputs, got %d", len(got))
		}
	})

	t.Run("unknown policy", func(t *testing.T) {
		if got := DefaultSplitInputs(members, "bogus"); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("included flags are independent", func(t *testing.T) {
		got := DefaultSplitInputs(members, models.SplitEqual)
		*got[0].Included = false
		if !*got[1].Included {
			t.Error("inputs share an Included pointer")
		}
	})
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   string
	}{
		{90, 1, "90.0"},
		{75.5, 2, "75.50"},
		{0.125, 2, "0.13"},
		{-3.14159, 2, "-3.14"},
		{math.NaN(), 2, "NaN"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.v, tt.places); got != tt.want {
			t.Errorf("FormatAmount(%v, %d) = %q, want %q", tt.v, tt.places, got, tt.want)
		}
	}
}
