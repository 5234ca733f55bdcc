package models

// Payment represents a direct cash transfer between two group members,
// recorded to settle balances outside of transactions.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string `validate:"required"`

	// FromID is the member who handed over the cash (debtor settling up).
	FromID string `validate:"required"`

	// ToID is the member who received the cash (creditor being paid).
	ToID string `validate:"required,nefield=FromID"`

	// Amount is the transferred amount.
	Amount float64 `validate:"gt=0"`

	// Date is the Unix timestamp of the payment.
	Date int64

	// Notes is an optional free-form description.
	Notes string

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}
