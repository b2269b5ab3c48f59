package finance

import (
	"errors"
	"fmt"
)

// ErrExpenseNotAccepted is returned when an expense that is not in the
// accepted state is added to a group's finances. Pending expenses must
// be approved before they can affect balances.
var ErrExpenseNotAccepted = errors.New("expense must be accepted to affect balances")

// GroupFinances is a snapshot of a group's bookkeeping state: the
// processed expenses, the balances they produce, and the settlement
// plan for those balances.
type GroupFinances struct {
	Expenses []Expense
	Balances []Balance
	Debts    []Debt
}

// AddExpense incorporates one accepted expense into a finances snapshot
// and returns the new snapshot: expense appended, balances merged,
// debts recomputed. The input snapshot is left untouched. Fails with
// ErrExpenseNotAccepted for pending or rejected expenses and with
// ErrUnknownParticipant when the expense references a user outside the
// snapshot's balance set; on failure no partial snapshot is returned.
func AddExpense(expense Expense, finances GroupFinances) (GroupFinances, error) {
	if expense.Status != StatusAccepted {
		return GroupFinances{}, fmt.Errorf("expense %s has status %q: %w", expense.ID, expense.Status, ErrExpenseNotAccepted)
	}

	balances, err := MergeExpense(expense, finances.Balances)
	if err != nil {
		return GroupFinances{}, err
	}

	expenses := make([]Expense, 0, len(finances.Expenses)+1)
	expenses = append(expenses, finances.Expenses...)
	expenses = append(expenses, expense)

	return GroupFinances{
		Expenses: expenses,
		Balances: balances,
		Debts:    CalculateDebts(balances),
	}, nil
}
