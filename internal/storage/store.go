// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"settleup/internal/finance"
	"settleup/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
// Implementations wrap it with the record kind and identifier.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for settleup's persistence operations.
// This abstraction allows swapping storage backends (SQLite,
// PostgreSQL, etc.) without changing the service layer.
//
// Balances and debts are never persisted: they are derived from the
// stored expenses by the finance package on demand.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email, or ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID, or ErrNotFound.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateGroup persists a new group with its initial members.
	// Populates the group's ID and timestamps if unset.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its members and invitations
	// loaded, or ErrNotFound. The Finances field is left empty; use
	// ListExpensesByGroup to reconstruct it.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByMember retrieves all groups the user belongs to.
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)

	// AddGroupMember adds a user to a group's membership.
	AddGroupMember(ctx context.Context, groupID, userID string) error

	// CreateInvitation persists a new email invitation.
	CreateInvitation(ctx context.Context, inv *models.EmailInvitation) error

	// GetInvitation retrieves an invitation by ID, or ErrNotFound.
	GetInvitation(ctx context.Context, id string) (*models.EmailInvitation, error)

	// UpdateInvitationStatus transitions an invitation to the given status.
	UpdateInvitationStatus(ctx context.Context, id string, status models.InvitationStatus) error

	// ListInvitationsByEmail retrieves all invitations addressed to the email.
	ListInvitationsByEmail(ctx context.Context, email string) ([]*models.EmailInvitation, error)

	// AddExpense persists an expense under a group, preserving the
	// participant order. Populates the expense's ID and CreatedAt if unset.
	AddExpense(ctx context.Context, groupID string, expense *finance.Expense) error

	// ListExpensesByGroup retrieves a group's expenses in insertion order.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]finance.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
