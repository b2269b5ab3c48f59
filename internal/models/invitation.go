package models

// InvitationStatus tracks the lifecycle of an email invitation.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

// EmailInvitation invites someone to a group by email address. The
// invitee does not need an account yet; the invitation is matched
// against their email when they respond.
type EmailInvitation struct {
	// ID is the unique identifier for the invitation (UUID format).
	ID string

	// GroupID is the group the invitee is being asked to join.
	GroupID string

	// InviterID is the member who sent the invitation.
	InviterID string

	// InviteeEmail is the address the invitation was sent to.
	InviteeEmail string

	// Status is pending until the invitee accepts or rejects.
	Status InvitationStatus

	// CreatedAt is the Unix timestamp when the invitation was created.
	CreatedAt int64
}
