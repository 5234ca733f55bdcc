package calculator

import (
	"fmt"
	"math"

	"github.com/mmynk/splitledger/internal/models"
)

// SplitInput is one member's raw input for a split policy. It is never
// persisted; only the resolved models.Split is.
type SplitInput struct {
	MemberID string
	// Value is a percentage, an exact amount or a share count depending on
	// the policy. Ignored for equal splits.
	Value float64
	// Included marks membership in an equal split. nil counts as included.
	Included *bool
}

// IsIncluded reports whether the input takes part in an equal split.
func (in SplitInput) IsIncluded() bool {
	return in.Included == nil || *in.Included
}

// ValidationResult is the outcome of ValidateSplits. Error is empty when Valid.
type ValidationResult struct {
	Valid bool
	Error string
}

const errNoMembers = "At least one member must be included in the split"

// CalculateSplits converts raw inputs into resolved splits, one per input and
// in input order. No rounding is applied. An unknown policy yields no splits.
//
// CalculateSplits never fails; use ValidateSplits to decide whether the
// result is acceptable.
func CalculateSplits(totalAmount float64, policy models.SplitPolicy, inputs []SplitInput) []models.Split {
	splits := make([]models.Split, 0, len(inputs))

	switch policy {
	case models.SplitEqual:
		included := 0
		for _, in := range inputs {
			if in.IsIncluded() {
				included++
			}
		}
		var each float64
		if included > 0 {
			each = totalAmount / float64(included)
		}
		for _, in := range inputs {
			amount := 0.0
			if in.IsIncluded() {
				amount = each
			}
			splits = append(splits, models.Split{MemberID: in.MemberID, Amount: amount})
		}

	case models.SplitPercentage:
		for _, in := range inputs {
			pct := value(in.Value)
			splits = append(splits, models.Split{
				MemberID:   in.MemberID,
				Amount:     pct / 100 * totalAmount,
				Percentage: &pct,
			})
		}

	case models.SplitExact:
		for _, in := range inputs {
			splits = append(splits, models.Split{MemberID: in.MemberID, Amount: value(in.Value)})
		}

	case models.SplitShares:
		totalShares := sumValues(inputs)
		for _, in := range inputs {
			shares := value(in.Value)
			amount := 0.0
			if totalShares > 0 {
				amount = shares / totalShares * totalAmount
			}
			splits = append(splits, models.Split{
				MemberID: in.MemberID,
				Amount:   amount,
				Shares:   &shares,
			})
		}

	default:
		return nil
	}

	return splits
}

// ValidateSplits checks whether inputs are acceptable for the policy.
// It reports problems as a result instead of an error so callers can show
// the message directly.
func ValidateSplits(totalAmount float64, policy models.SplitPolicy, inputs []SplitInput) ValidationResult {
	if len(inputs) == 0 {
		return invalid(errNoMembers)
	}

	switch policy {
	case models.SplitEqual:
		for _, in := range inputs {
			if in.IsIncluded() {
				return ValidationResult{Valid: true}
			}
		}
		return invalid(errNoMembers)

	case models.SplitPercentage:
		total := sumValues(inputs)
		if math.Abs(total-100) > Epsilon {
			return invalid(fmt.Sprintf("Percentages must total 100%% (currently %s%%)", FormatAmount(total, 1)))
		}
		return ValidationResult{Valid: true}

	case models.SplitExact:
		total := sumValues(inputs)
		if math.Abs(total-totalAmount) > Epsilon {
			return invalid(fmt.Sprintf("Amounts must total $%s (currently $%s)",
				FormatAmount(totalAmount, 2), FormatAmount(total, 2)))
		}
		return ValidationResult{Valid: true}

	case models.SplitShares:
		if sumValues(inputs) <= 0 {
			return invalid("Total shares must be greater than 0")
		}
		for _, in := range inputs {
			if in.Value < 0 {
				return invalid("Shares cannot be negative")
			}
		}
		return ValidationResult{Valid: true}

	default:
		return invalid("Invalid split type")
	}
}

// DefaultSplitInputs seeds inputs for the given members and policy:
// everyone included for equal, an even percentage each, zero exact amounts,
// or one share each.
func DefaultSplitInputs(memberIDs []string, policy models.SplitPolicy) []SplitInput {
	var seed func() SplitInput
	switch policy {
	case models.SplitEqual:
		seed = func() SplitInput {
			included := true
			return SplitInput{Included: &included}
		}
	case models.SplitPercentage:
		var pct float64
		if len(memberIDs) > 0 {
			pct = 100 / float64(len(memberIDs))
		}
		seed = func() SplitInput { return SplitInput{Value: pct} }
	case models.SplitExact:
		seed = func() SplitInput { return SplitInput{} }
	case models.SplitShares:
		seed = func() SplitInput { return SplitInput{Value: 1} }
	default:
		return nil
	}

	inputs := make([]SplitInput, len(memberIDs))
	for i, id := range memberIDs {
		inputs[i] = seed()
		inputs[i].MemberID = id
	}
	return inputs
}

// SumSplits returns the total of the split amounts.
func SumSplits(splits []models.Split) float64 {
	var total float64
	for _, s := range splits {
		total += s.Amount
	}
	return total
}

func sumValues(inputs []SplitInput) float64 {
	var total float64
	for _, in := range inputs {
		total += value(in.Value)
	}
	return total
}

func invalid(msg string) ValidationResult {
	return ValidationResult{Valid: false, Error: msg}
}
