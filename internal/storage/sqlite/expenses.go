package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"settleup/internal/finance"
)

// AddExpense persists an expense under a group. Participant order is
// preserved via an explicit position column.
func (s *SQLiteStore) AddExpense(ctx context.Context, groupID string, expense *finance.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, payee_id, submitted_by_id, amount, date, description, category, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, groupID, expense.PayeeID, expense.SubmittedByID, expense.Amount,
		expense.Date, expense.Description, expense.Category, expense.Status, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, pid := range expense.ParticipantIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, user_id, position) VALUES (?, ?, ?)",
			expense.ID, pid, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense participant: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE groups SET updated_at = ? WHERE id = ?",
		time.Now().Unix(), groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to touch group: %w", err)
	}

	return tx.Commit()
}

// ListExpensesByGroup retrieves a group's expenses in insertion order.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]finance.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, payee_id, submitted_by_id, amount, date, description, category, status, created_at
		 FROM expenses WHERE group_id = ? ORDER BY created_at, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []finance.Expense
	for rows.Next() {
		var e finance.Expense
		if err := rows.Scan(&e.ID, &e.PayeeID, &e.SubmittedByID, &e.Amount, &e.Date,
			&e.Description, &e.Category, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for i := range expenses {
		if expenses[i].ParticipantIDs, err = s.listParticipants(ctx, expenses[i].ID); err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

func (s *SQLiteStore) listParticipants(ctx context.Context, expenseID string) ([]finance.UserID, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM expense_participants WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense participants: %w", err)
	}
	defer rows.Close()

	var participants []finance.UserID
	for rows.Next() {
		var id finance.UserID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan expense participant: %w", err)
		}
		participants = append(participants, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense participants: %w", err)
	}
	return participants, nil
}
