package finance

import (
	"errors"
	"math"
	"testing"
)

func TestAddExpense(t *testing.T) {
	finances := GroupFinances{
		Expenses: []Expense{
			{ID: "e1", PayeeID: "u1", Amount: 100, Status: StatusAccepted, ParticipantIDs: []UserID{"u2", "u3"}},
		},
		Balances: []Balance{
			{UserID: "u1", TotalCredit: 100, TotalDebit: 0},
			{UserID: "u2", TotalCredit: 0, TotalDebit: 50},
			{UserID: "u3", TotalCredit: 0, TotalDebit: 50},
		},
		Debts: []Debt{
			{CreditorID: "u1", DebtorID: "u2", Amount: 50},
			{CreditorID: "u1", DebtorID: "u3", Amount: 50},
		},
	}

	expense := Expense{
		ID:             "e2",
		PayeeID:        "u2",
		Amount:         30,
		Status:         StatusAccepted,
		ParticipantIDs: []UserID{"u1", "u2", "u3"},
	}

	updated, err := AddExpense(expense, finances)
	if err != nil {
		t.Fatalf("AddExpense() error = %v", err)
	}

	if len(updated.Expenses) != 2 || updated.Expenses[1].ID != "e2" {
		t.Errorf("expenses = %v, want e1 then e2", updated.Expenses)
	}

	balancesEqual(t, updated.Balances, []Balance{
		{UserID: "u1", TotalCredit: 100, TotalDebit: 10},
		{UserID: "u2", TotalCredit: 30, TotalDebit: 60},
		{UserID: "u3", TotalCredit: 0, TotalDebit: 60},
	})

	// Debts must be recomputed for the merged balances.
	for userID, net := range applyDebts(updated.Balances, updated.Debts) {
		if math.Abs(net) > 1e-6 {
			t.Errorf("user %s left with net %v after settlement", userID, net)
		}
	}

	// Original snapshot stays as it was.
	if len(finances.Expenses) != 1 {
		t.Errorf("input snapshot gained expenses: %v", finances.Expenses)
	}
	balancesEqual(t, finances.Balances, []Balance{
		{UserID: "u1", TotalCredit: 100, TotalDebit: 0},
		{UserID: "u2", TotalCredit: 0, TotalDebit: 50},
		{UserID: "u3", TotalCredit: 0, TotalDebit: 50},
	})
}

func TestAddExpenseRejectsNonAccepted(t *testing.T) {
	finances := GroupFinances{
		Balances: []Balance{{UserID: "u1"}, {UserID: "u2"}},
	}

	for _, status := range []ExpenseStatus{StatusPending, StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			expense := Expense{
				ID:             "e1",
				PayeeID:        "u1",
				Amount:         25,
				Status:         status,
				ParticipantIDs: []UserID{"u2"},
			}
			if _, err := AddExpense(expense, finances); !errors.Is(err, ErrExpenseNotAccepted) {
				t.Errorf("error = %v, want ErrExpenseNotAccepted", err)
			}
		})
	}
}

func TestAddExpenseUnknownParticipant(t *testing.T) {
	finances := GroupFinances{
		Balances: []Balance{{UserID: "u1"}},
	}
	expense := Expense{
		ID:             "e1",
		PayeeID:        "u1",
		Amount:         25,
		Status:         StatusAccepted,
		ParticipantIDs: []UserID{"stranger"},
	}
	if _, err := AddExpense(expense, finances); !errors.Is(err, ErrUnknownParticipant) {
		t.Fatalf("error = %v, want ErrUnknownParticipant", err)
	}
}
