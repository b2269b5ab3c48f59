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

// CreateGroup persists a new group and its initial members.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if group.CreatedAt == 0 {
		group.CreatedAt = now
	}
	if group.UpdatedAt == 0 {
		group.UpdatedAt = group.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, creator_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		group.ID, group.Name, group.CreatorID, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for _, member := range group.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO group_members (group_id, user_id) VALUES (?, ?)",
			group.ID, member.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}

	return tx.Commit()
}

// GetGroup retrieves a group with its members and invitations.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, creator_id, created_at, updated_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.CreatorID, &group.CreatedAt, &group.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if group.Members, err = s.listMembers(ctx, groupID); err != nil {
		return nil, err
	}
	if group.Invitations, err = s.listInvitations(ctx, groupID); err != nil {
		return nil, err
	}

	return group, nil
}

// ListGroupsByMember retrieves all groups the user belongs to.
func (s *SQLiteStore) ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id FROM groups g
		 JOIN group_members gm ON gm.group_id = g.id
		 WHERE gm.user_id = ? ORDER BY g.created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups by member: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan group id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	groups := make([]*models.Group, 0, len(ids))
	for _, id := range ids {
		group, err := s.GetGroup(ctx, id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// AddGroupMember adds a user to a group's membership. Adding an
// existing member is a no-op.
func (s *SQLiteStore) AddGroupMember(ctx context.Context, groupID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO group_members (group_id, user_id) VALUES (?, ?)",
		groupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"UPDATE groups SET updated_at = ? WHERE id = ?",
		time.Now().Unix(), groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to touch group: %w", err)
	}
	return nil
}

func (s *SQLiteStore) listMembers(ctx context.Context, groupID string) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.id, u.display_name, u.email, u.password_hash, u.created_at
		 FROM users u
		 JOIN group_members gm ON gm.user_id = u.id
		 WHERE gm.group_id = ? ORDER BY u.created_at`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	var members []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.DisplayName, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}
	return members, nil
}
