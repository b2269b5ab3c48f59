package finance

import (
	"errors"
	"fmt"
)

var (
	// ErrNoParticipants is returned for an expense with an empty
	// participant list. Such an expense cannot be split and indicates
	// malformed input that should have been rejected upstream.
	ErrNoParticipants = errors.New("expense has no participants")

	// ErrUnknownParticipant is returned when an expense references a
	// user with no entry in the current balance set, i.e. someone
	// outside the tracked group.
	ErrUnknownParticipant = errors.New("user not present in balances")
)

// Balance is one user's cumulative position across all processed
// expenses. Both totals are non-negative; the user's net position is
// TotalCredit - TotalDebit.
type Balance struct {
	UserID      UserID
	TotalCredit float64 // sum of amounts this user is owed
	TotalDebit  float64 // sum of amounts this user owes
}

// Net returns the user's net balance. Positive means the user is owed
// money, negative means they owe.
func (b Balance) Net() float64 {
	return b.TotalCredit - b.TotalDebit
}

// CalculateBalances folds a list of expenses into one Balance per user.
// Each expense credits its payee with the full amount and debits every
// participant an equal share. A payee listed among the participants is
// debited their own share like anyone else. Users appear in the result
// in first-seen order; expense order does not otherwise affect totals.
func CalculateBalances(expenses []Expense) ([]Balance, error) {
	totals := make(map[UserID]*Balance)
	var order []UserID
	account := func(id UserID) *Balance {
		if b, ok := totals[id]; ok {
			return b
		}
		b := &Balance{UserID: id}
		totals[id] = b
		order = append(order, id)
		return b
	}

	for _, e := range expenses {
		if len(e.ParticipantIDs) == 0 {
			return nil, fmt.Errorf("expense %s: %w", e.ID, ErrNoParticipants)
		}
		account(e.PayeeID).TotalCredit += e.Amount
		share := e.Amount / float64(len(e.ParticipantIDs))
		for _, pid := range e.ParticipantIDs {
			account(pid).TotalDebit += share
		}
	}

	balances := make([]Balance, len(order))
	for i, id := range order {
		balances[i] = *totals[id]
	}
	return balances, nil
}

// MergeExpense applies a single expense to an existing balance set and
// returns the updated copy. Unlike CalculateBalances it requires every
// referenced user to already have a Balance entry: an unknown payee or
// participant yields ErrUnknownParticipant, signalling the expense
// references someone outside the group. The input slice is never
// modified, even on error.
func MergeExpense(expense Expense, balances []Balance) ([]Balance, error) {
	if len(expense.ParticipantIDs) == 0 {
		return nil, fmt.Errorf("expense %s: %w", expense.ID, ErrNoParticipants)
	}

	index := make(map[UserID]int, len(balances))
	merged := make([]Balance, len(balances))
	for i, b := range balances {
		merged[i] = b
		index[b.UserID] = i
	}

	pos, ok := index[expense.PayeeID]
	if !ok {
		return nil, fmt.Errorf("payee %s: %w", expense.PayeeID, ErrUnknownParticipant)
	}
	merged[pos].TotalCredit += expense.Amount

	share := expense.Amount / float64(len(expense.ParticipantIDs))
	for _, pid := range expense.ParticipantIDs {
		pos, ok := index[pid]
		if !ok {
			return nil, fmt.Errorf("participant %s: %w", pid, ErrUnknownParticipant)
		}
		merged[pos].TotalDebit += share
	}

	return merged, nil
}
