package models

// SplitPolicy determines how raw per-member inputs map to monetary amounts.
type SplitPolicy string

const (
	// SplitEqual divides the amount evenly among included members.
	SplitEqual SplitPolicy = "equal"
	// SplitPercentage assigns each member a percentage of the amount.
	SplitPercentage SplitPolicy = "percentage"
	// SplitExact assigns each member an absolute amount.
	SplitExact SplitPolicy = "exact"
	// SplitShares divides the amount proportionally to share units.
	SplitShares SplitPolicy = "shares"
)

// SplitPolicies lists every known policy in display order.
var SplitPolicies = []SplitPolicy{SplitEqual, SplitPercentage, SplitExact, SplitShares}

// ParseSplitPolicy converts s to a SplitPolicy.
// The second result is false when s names no known policy.
func ParseSplitPolicy(s string) (SplitPolicy, bool) {
	for _, p := range SplitPolicies {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Split is one member's resolved share of a transaction's cost.
type Split struct {
	// MemberID references the member bearing this share.
	MemberID string `validate:"required"`

	// Amount is the monetary share.
	Amount float64

	// Percentage is echoed back for percentage splits.
	Percentage *float64

	// Shares is echoed back for shares splits.
	Shares *float64
}

// Transaction represents one expense: PayerID advanced the full Amount and
// Splits describe how that cost is apportioned among members.
//
// The sum of Splits[].Amount equals Amount within 0.01 when the transaction is
// created or edited. Stored transactions are not re-validated on load.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `validate:"required"`

	// Description is a short human-readable label (e.g., "Groceries").
	Description string

	// Amount is the total cost advanced by the payer.
	Amount float64 `validate:"gt=0"`

	// PayerID references the member who paid.
	PayerID string `validate:"required"`

	// Policy is the split policy used to produce Splits.
	Policy SplitPolicy `validate:"required,oneof=equal percentage exact shares"`

	// Splits is the resolved cost apportionment.
	Splits []Split `validate:"dive"`

	// Date is the Unix timestamp of the expense.
	Date int64

	// Category is one of DefaultCategories or a group custom category.
	Category string

	// Notes is an optional free-form description.
	Notes string

	// CreatedAt is the Unix timestamp when the transaction was recorded.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last edit.
	UpdatedAt int64
}

// ShareOf returns the split amount assigned to memberID, or 0 if the member
// has no split entry.
func (t *Transaction) ShareOf(memberID string) float64 {
	for _, s := range t.Splits {
		if s.MemberID == memberID {
			return s.Amount
		}
	}
	return 0
}

// Debt is a single suggested transfer in a settlement plan.
type Debt struct {
	From   string  // Member who owes
	To     string  // Member who is owed
	Amount float64
}
