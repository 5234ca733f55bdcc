package models

// MemberStatus describes how a member is linked to an external identity.
type MemberStatus string

const (
	// MemberStatusPlaceholder is a member with no linked identity.
	MemberStatusPlaceholder MemberStatus = "placeholder"
	// MemberStatusInvited is a member with an outstanding link request.
	MemberStatusInvited MemberStatus = "invited"
	// MemberStatusActive is a member linked to an identity.
	MemberStatusActive MemberStatus = "active"
)

// Valid reports whether s is one of the known statuses.
func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusPlaceholder, MemberStatusInvited, MemberStatusActive:
		return true
	}
	return false
}

// Member is a person participating in a group.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `validate:"required"`

	// Name is the display name. It is mutable and not used for identity.
	Name string `validate:"required"`

	// Status is placeholder, invited or active.
	Status MemberStatus `validate:"required,oneof=placeholder invited active"`
}
