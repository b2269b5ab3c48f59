package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"settleup/internal/finance"
	"settleup/internal/models"
	"settleup/internal/storage"
)

var (
	// ErrNotMember is returned when a user acts on a group they do not
	// belong to.
	ErrNotMember = errors.New("user is not a member of the group")

	// ErrNotInvitee is returned when a user responds to an invitation
	// addressed to a different email.
	ErrNotInvitee = errors.New("invitation is addressed to someone else")

	// ErrInvitationClosed is returned when an invitation has already
	// been accepted or rejected.
	ErrInvitationClosed = errors.New("invitation already answered")
)

// GroupService manages groups, their membership, and their finances.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a group with the creator as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, creatorID, name string) (*models.Group, error) {
	creator, err := s.store.GetUserByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:      name,
		CreatorID: creator.ID,
		Members:   []models.User{*creator},
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "creator_id", creatorID)
	return group, nil
}

// GetGroup retrieves a group with its finances for a member.
func (s *GroupService) GetGroup(ctx context.Context, groupID, userID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsMember(userID) {
		return nil, fmt.Errorf("user %s in group %s: %w", userID, groupID, ErrNotMember)
	}

	finances, err := s.loadFinances(ctx, group)
	if err != nil {
		return nil, err
	}
	group.Finances = finances
	return group, nil
}

// ListGroups retrieves all groups the user belongs to, without finances.
func (s *GroupService) ListGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.store.ListGroupsByMember(ctx, userID)
}

// GetFinances reconstructs a group's bookkeeping snapshot for a member:
// stored expenses, the balances they aggregate to, and the settlement plan.
func (s *GroupService) GetFinances(ctx context.Context, groupID, userID string) (finance.GroupFinances, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return finance.GroupFinances{}, err
	}
	if !group.IsMember(userID) {
		return finance.GroupFinances{}, fmt.Errorf("user %s in group %s: %w", userID, groupID, ErrNotMember)
	}
	return s.loadFinances(ctx, group)
}

// AddExpense validates and records an expense for a group, returning
// the updated finances snapshot. The submitter must be a member;
// expense-level rules (accepted status, participants within the group)
// are enforced by the finance package.
func (s *GroupService) AddExpense(ctx context.Context, groupID, submitterID string, expense finance.Expense) (finance.GroupFinances, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return finance.GroupFinances{}, err
	}
	if !group.IsMember(submitterID) {
		return finance.GroupFinances{}, fmt.Errorf("user %s in group %s: %w", submitterID, groupID, ErrNotMember)
	}
	expense.SubmittedByID = submitterID
	// Assign identity up front so the returned snapshot and the stored
	// row agree.
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	current, err := s.loadFinances(ctx, group)
	if err != nil {
		return finance.GroupFinances{}, err
	}

	updated, err := finance.AddExpense(expense, current)
	if err != nil {
		return finance.GroupFinances{}, err
	}

	if err := s.store.AddExpense(ctx, groupID, &expense); err != nil {
		return finance.GroupFinances{}, err
	}

	slog.Info("Expense added",
		"group_id", groupID,
		"expense_id", expense.ID,
		"payee_id", expense.PayeeID,
		"amount", expense.Amount,
		"participants", len(expense.ParticipantIDs),
	)
	return updated, nil
}

// InviteMember creates a pending email invitation to the group.
func (s *GroupService) InviteMember(ctx context.Context, groupID, inviterID, email string) (*models.EmailInvitation, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsMember(inviterID) {
		return nil, fmt.Errorf("user %s in group %s: %w", inviterID, groupID, ErrNotMember)
	}

	inv := &models.EmailInvitation{
		GroupID:      groupID,
		InviterID:    inviterID,
		InviteeEmail: email,
		Status:       models.InvitationPending,
	}
	if err := s.store.CreateInvitation(ctx, inv); err != nil {
		return nil, err
	}

	slog.Info("Invitation created", "group_id", groupID, "invitation_id", inv.ID)
	return inv, nil
}

// ListInvitations retrieves all invitations addressed to the user's email.
func (s *GroupService) ListInvitations(ctx context.Context, email string) ([]*models.EmailInvitation, error) {
	return s.store.ListInvitationsByEmail(ctx, email)
}

// RespondToInvitation accepts or rejects a pending invitation on behalf
// of the invitee. Accepting adds the user to the group.
func (s *GroupService) RespondToInvitation(ctx context.Context, invitationID, userID string, accept bool) error {
	inv, err := s.store.GetInvitation(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv.Status != models.InvitationPending {
		return fmt.Errorf("invitation %s is %s: %w", invitationID, inv.Status, ErrInvitationClosed)
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Email != inv.InviteeEmail {
		return fmt.Errorf("invitation %s: %w", invitationID, ErrNotInvitee)
	}

	status := models.InvitationRejected
	if accept {
		status = models.InvitationAccepted
	}
	if err := s.store.UpdateInvitationStatus(ctx, invitationID, status); err != nil {
		return err
	}

	if accept {
		if err := s.store.AddGroupMember(ctx, inv.GroupID, userID); err != nil {
			return err
		}
	}

	slog.Info("Invitation answered", "invitation_id", invitationID, "status", status)
	return nil
}

// loadFinances builds the group's snapshot from its stored expenses.
// Every member gets a balance entry even before their first expense, so
// membership checks in the finance core fall out naturally.
func (s *GroupService) loadFinances(ctx context.Context, group *models.Group) (finance.GroupFinances, error) {
	expenses, err := s.store.ListExpensesByGroup(ctx, group.ID)
	if err != nil {
		return finance.GroupFinances{}, err
	}

	balances, err := finance.CalculateBalances(expenses)
	if err != nil {
		return finance.GroupFinances{}, err
	}

	seen := make(map[finance.UserID]bool, len(balances))
	for _, b := range balances {
		seen[b.UserID] = true
	}
	for _, id := range group.MemberIDs() {
		if !seen[id] {
			balances = append(balances, finance.Balance{UserID: id})
		}
	}

	return finance.GroupFinances{
		Expenses: expenses,
		Balances: balances,
		Debts:    finance.CalculateDebts(balances),
	}, nil
}
