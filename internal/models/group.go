package models

import "settleup/internal/finance"

// Group represents a set of people who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string

	// CreatorID is the user who created the group. The creator is
	// always the first member.
	CreatorID string

	// Members are the users currently in the group.
	Members []User

	// Invitations are the email invitations sent for this group,
	// including already answered ones.
	Invitations []EmailInvitation

	// Finances is the group's bookkeeping snapshot. Balances and debts
	// are derived from the stored expenses, not persisted separately.
	Finances finance.GroupFinances

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last membership or
	// expense change.
	UpdatedAt int64
}

// IsMember reports whether the given user belongs to the group.
func (g *Group) IsMember(userID string) bool {
	for _, m := range g.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// MemberIDs returns the IDs of all group members.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}
