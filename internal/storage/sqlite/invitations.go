package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"settleup/internal/models"
	"settleup/internal/storage"
)

// CreateInvitation persists a new email invitation.
func (s *SQLiteStore) CreateInvitation(ctx context.Context, inv *models.EmailInvitation) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt == 0 {
		inv.CreatedAt = time.Now().Unix()
	}
	if inv.Status == "" {
		inv.Status = models.InvitationPending
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invitations (id, group_id, inviter_id, invitee_email, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.GroupID, inv.InviterID, inv.InviteeEmail, inv.Status, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invitation: %w", err)
	}
	return nil
}

// GetInvitation retrieves an invitation by ID.
func (s *SQLiteStore) GetInvitation(ctx context.Context, id string) (*models.EmailInvitation, error) {
	inv := &models.EmailInvitation{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, group_id, inviter_id, invitee_email, status, created_at
		 FROM invitations WHERE id = ?`,
		id,
	).Scan(&inv.ID, &inv.GroupID, &inv.InviterID, &inv.InviteeEmail, &inv.Status, &inv.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("invitation %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return inv, nil
}

// UpdateInvitationStatus transitions an invitation to the given status.
func (s *SQLiteStore) UpdateInvitationStatus(ctx context.Context, id string, status models.InvitationStatus) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE invitations SET status = ? WHERE id = ?",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update invitation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check invitation update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("invitation %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// ListInvitationsByEmail retrieves all invitations addressed to the email.
func (s *SQLiteStore) ListInvitationsByEmail(ctx context.Context, email string) ([]*models.EmailInvitation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, inviter_id, invitee_email, status, created_at
		 FROM invitations WHERE invitee_email = ? ORDER BY created_at DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations by email: %w", err)
	}
	defer rows.Close()

	var invitations []*models.EmailInvitation
	for rows.Next() {
		inv := &models.EmailInvitation{}
		if err := rows.Scan(&inv.ID, &inv.GroupID, &inv.InviterID, &inv.InviteeEmail, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invitations: %w", err)
	}
	return invitations, nil
}

func (s *SQLiteStore) listInvitations(ctx context.Context, groupID string) ([]models.EmailInvitation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, inviter_id, invitee_email, status, created_at
		 FROM invitations WHERE group_id = ? ORDER BY created_at`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group invitations: %w", err)
	}
	defer rows.Close()

	var invitations []models.EmailInvitation
	for rows.Next() {
		var inv models.EmailInvitation
		if err := rows.Scan(&inv.ID, &inv.GroupID, &inv.InviterID, &inv.InviteeEmail, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invitations: %w", err)
	}
	return invitations, nil
}
