package models

// DefaultCategories are offered for every group in addition to its custom categories.
var DefaultCategories = []string{
	"Food & Dining",
	"Shopping",
	"Transportation",
	"Entertainment",
	"Utilities",
	"Travel",
	"Other",
}

// Group is the aggregate root of the ledger. All balance computation is a
// pure function of its Members, Transactions and Payments.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `validate:"required"`

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string `validate:"required"`

	// OwnerID identifies whoever created the group. Opaque to the ledger.
	OwnerID string

	// Members are the people sharing expenses in this group.
	Members []Member `validate:"dive"`

	// Transactions are the recorded expenses.
	Transactions []Transaction `validate:"dive"`

	// Payments are the recorded direct transfers.
	Payments []Payment `validate:"dive"`

	// CustomCategories are categories added by the group on top of DefaultCategories.
	CustomCategories []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last saved change.
	UpdatedAt int64
}

// Member returns the member with the given ID, or nil.
func (g *Group) Member(id string) *Member {
	for i := range g.Members {
		if g.Members[i].ID == id {
			return &g.Members[i]
		}
	}
	return nil
}

// MemberIDs returns member IDs in list order.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}

// Transaction returns the transaction with the given ID, or nil.
func (g *Group) Transaction(id string) *Transaction {
	for i := range g.Transactions {
		if g.Transactions[i].ID == id {
			return &g.Transactions[i]
		}
	}
	return nil
}

// IsMemberReferenced reports whether any transaction (as payer or split) or
// payment (as sender or receiver) references memberID.
func (g *Group) IsMemberReferenced(memberID string) bool {
	for _, t := range g.Transactions {
		if t.PayerID == memberID {
			return true
		}
		for _, s := range t.Splits {
			if s.MemberID == memberID {
				return true
			}
		}
	}
	for _, p := range g.Payments {
		if p.FromID == memberID || p.ToID == memberID {
			return true
		}
	}
	return false
}

// Categories returns DefaultCategories followed by the group's custom categories.
func (g *Group) Categories() []string {
	out := make([]string, 0, len(DefaultCategories)+len(g.CustomCategories))
	out = append(out, DefaultCategories...)
	return append(out, g.CustomCategories...)
}

// HasCategory reports whether c is a default or custom category of the group.
func (g *Group) HasCategory(c string) bool {
	for _, existing := range g.Categories() {
		if existing == c {
			return true
		}
	}
	return false
}
