package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"settleup/internal/finance"
	"settleup/internal/models"
	"settleup/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "settleup.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, email, name string) *models.User {
	t.Helper()

	user := models.NewUser(email, name, "hash")
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func TestUserRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, store, "alice@example.com", "Alice")

	byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
	require.Equal(t, "Alice", byEmail.DisplayName)

	byID, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, byID.Email)

	_, err = store.GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	createTestUser(t, store, "alice@example.com", "Alice")
	err := store.CreateUser(ctx, models.NewUser("alice@example.com", "Other Alice", "hash"))
	require.Error(t, err)
}

func TestGroupRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com", "Alice")
	bob := createTestUser(t, store, "bob@example.com", "Bob")

	group := &models.Group{
		Name:      "Roommates",
		CreatorID: alice.ID,
		Members:   []models.User{*alice},
	}
	require.NoError(t, store.CreateGroup(ctx, group))
	require.NotEmpty(t, group.ID)
	require.NotZero(t, group.CreatedAt)

	loaded, err := store.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Equal(t, "Roommates", loaded.Name)
	require.Len(t, loaded.Members, 1)
	require.True(t, loaded.IsMember(alice.ID))
	require.False(t, loaded.IsMember(bob.ID))

	require.NoError(t, store.AddGroupMember(ctx, group.ID, bob.ID))
	loaded, err = store.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Members, 2)
	require.True(t, loaded.IsMember(bob.ID))

	// Re-adding an existing member is a no-op.
	require.NoError(t, store.AddGroupMember(ctx, group.ID, bob.ID))
	loaded, err = store.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Members, 2)

	groups, err := store.ListGroupsByMember(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, group.ID, groups[0].ID)

	_, err = store.GetGroup(ctx, "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInvitationLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com", "Alice")
	group := &models.Group{Name: "Trip", CreatorID: alice.ID, Members: []models.User{*alice}}
	require.NoError(t, store.CreateGroup(ctx, group))

	inv := &models.EmailInvitation{
		GroupID:      group.ID,
		InviterID:    alice.ID,
		InviteeEmail: "bob@example.com",
	}
	require.NoError(t, store.CreateInvitation(ctx, inv))
	require.NotEmpty(t, inv.ID)
	require.Equal(t, models.InvitationPending, inv.Status)

	loaded, err := store.GetInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "bob@example.com", loaded.InviteeEmail)

	byEmail, err := store.ListInvitationsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)

	require.NoError(t, store.UpdateInvitationStatus(ctx, inv.ID, models.InvitationAccepted))
	loaded, err = store.GetInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, models.InvitationAccepted, loaded.Status)

	err = store.UpdateInvitationStatus(ctx, "missing", models.InvitationRejected)
	require.True(t, errors.Is(err, storage.ErrNotFound))

	// Group load picks up its invitations.
	g, err := store.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, g.Invitations, 1)
}

func TestExpenseRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com", "Alice")
	bob := createTestUser(t, store, "bob@example.com", "Bob")
	group := &models.Group{Name: "Dinner", CreatorID: alice.ID, Members: []models.User{*alice, *bob}}
	require.NoError(t, store.CreateGroup(ctx, group))

	expense := &finance.Expense{
		PayeeID:        alice.ID,
		SubmittedByID:  alice.ID,
		Amount:         84.5,
		Date:           1700000000,
		Description:    "Sushi",
		Category:       "food",
		Status:         finance.StatusAccepted,
		ParticipantIDs: []finance.UserID{bob.ID, alice.ID},
	}
	require.NoError(t, store.AddExpense(ctx, group.ID, expense))
	require.NotEmpty(t, expense.ID)

	expenses, err := store.ListExpensesByGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)

	got := expenses[0]
	require.Equal(t, expense.ID, got.ID)
	require.Equal(t, alice.ID, got.PayeeID)
	require.InDelta(t, 84.5, got.Amount, 1e-9)
	require.Equal(t, finance.StatusAccepted, got.Status)
	// Participant order must survive the round trip.
	require.Equal(t, []finance.UserID{bob.ID, alice.ID}, got.ParticipantIDs)
}
