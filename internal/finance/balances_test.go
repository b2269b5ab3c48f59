package finance

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func balancesEqual(t *testing.T, got, want []Balance) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("balances count = %d, want %d (got %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i].UserID != want[i].UserID {
			t.Errorf("balances[%d].UserID = %s, want %s", i, got[i].UserID, want[i].UserID)
		}
		if math.Abs(got[i].TotalCredit-want[i].TotalCredit) > tolerance {
			t.Errorf("balances[%d] (%s) credit = %v, want %v", i, want[i].UserID, got[i].TotalCredit, want[i].TotalCredit)
		}
		if math.Abs(got[i].TotalDebit-want[i].TotalDebit) > tolerance {
			t.Errorf("balances[%d] (%s) debit = %v, want %v", i, want[i].UserID, got[i].TotalDebit, want[i].TotalDebit)
		}
	}
}

func TestCalculateBalances(t *testing.T) {
	tests := []struct {
		name     string
		expenses []Expense
		want     []Balance
	}{
		{
			name:     "no expenses",
			expenses: nil,
			want:     []Balance{},
		},
		{
			name: "single expense payee not participating",
			expenses: []Expense{
				{ID: "e1", PayeeID: "u1", Amount: 100, ParticipantIDs: []UserID{"u2", "u3"}},
			},
			want: []Balance{
				{UserID: "u1", TotalCredit: 100, TotalDebit: 0},
				{UserID: "u2", TotalCredit: 0, TotalDebit: 50},
				{UserID: "u3", TotalCredit: 0, TotalDebit: 50},
			},
		},
		{
			name: "two crossing expenses",
			expenses: []Expense{
				{ID: "e1", PayeeID: "u1", Amount: 100, ParticipantIDs: []UserID{"u2", "u3"}},
				{ID: "e2", PayeeID: "u2", Amount: 100, ParticipantIDs: []UserID{"u1", "u3"}},
			},
			want: []Balance{
				{UserID: "u1", TotalCredit: 100, TotalDebit: 50},
				{UserID: "u2", TotalCredit: 100, TotalDebit: 50},
				{UserID: "u3", TotalCredit: 0, TotalDebit: 100},
			},
		},
		{
			name: "payee is also a participant",
			expenses: []Expense{
				{ID: "e1", PayeeID: "u1", Amount: 60, ParticipantIDs: []UserID{"u1", "u2", "u3"}},
			},
			want: []Balance{
				{UserID: "u1", TotalCredit: 60, TotalDebit: 20},
				{UserID: "u2", TotalCredit: 0, TotalDebit: 20},
				{UserID: "u3", TotalCredit: 0, TotalDebit: 20},
			},
		},
		{
			name: "zero amount expense still registers users",
			expenses: []Expense{
				{ID: "e1", PayeeID: "u1", Amount: 0, ParticipantIDs: []UserID{"u2"}},
			},
			want: []Balance{
				{UserID: "u1", TotalCredit: 0, TotalDebit: 0},
				{UserID: "u2", TotalCredit: 0, TotalDebit: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBalances(tt.expenses)
			if err != nil {
				t.Fatalf("CalculateBalances() error = %v", err)
			}
			balancesEqual(t, got, tt.want)
		})
	}
}

func TestCalculateBalancesNoParticipants(t *testing.T) {
	_, err := CalculateBalances([]Expense{
		{ID: "e1", PayeeID: "u1", Amount: 50, ParticipantIDs: nil},
	})
	if !errors.Is(err, ErrNoParticipants) {
		t.Fatalf("error = %v, want ErrNoParticipants", err)
	}
}

func TestCalculateBalancesOrderIndependent(t *testing.T) {
	a := []Expense{
		{ID: "e1", PayeeID: "u1", Amount: 90, ParticipantIDs: []UserID{"u1", "u2", "u3"}},
		{ID: "e2", PayeeID: "u2", Amount: 40, ParticipantIDs: []UserID{"u1", "u3"}},
	}
	b := []Expense{a[1], a[0]}

	got1, err := CalculateBalances(a)
	if err != nil {
		t.Fatalf("CalculateBalances(a) error = %v", err)
	}
	got2, err := CalculateBalances(b)
	if err != nil {
		t.Fatalf("CalculateBalances(b) error = %v", err)
	}

	totals := make(map[UserID]Balance)
	for _, bal := range got2 {
		totals[bal.UserID] = bal
	}
	for _, bal := range got1 {
		other := totals[bal.UserID]
		if math.Abs(bal.TotalCredit-other.TotalCredit) > tolerance ||
			math.Abs(bal.TotalDebit-other.TotalDebit) > tolerance {
			t.Errorf("user %s: %v vs %v after reordering", bal.UserID, bal, other)
		}
	}
}

// Every expense's credit equals the sum of debits it generates, so the
// totals across any aggregated balance set must match.
func TestCalculateBalancesConservation(t *testing.T) {
	expenses := []Expense{
		{ID: "e1", PayeeID: "u1", Amount: 99.99, ParticipantIDs: []UserID{"u1", "u2", "u3"}},
		{ID: "e2", PayeeID: "u2", Amount: 12.5, ParticipantIDs: []UserID{"u3"}},
		{ID: "e3", PayeeID: "u3", Amount: 7.35, ParticipantIDs: []UserID{"u1", "u2", "u3", "u4"}},
		{ID: "e4", PayeeID: "u4", Amount: 250, ParticipantIDs: []UserID{"u1", "u4"}},
	}

	balances, err := CalculateBalances(expenses)
	if err != nil {
		t.Fatalf("CalculateBalances() error = %v", err)
	}

	var credit, debit float64
	for _, b := range balances {
		credit += b.TotalCredit
		debit += b.TotalDebit
	}
	if math.Abs(credit-debit) > 1e-6 {
		t.Errorf("sum(credit) = %v, sum(debit) = %v, want equal", credit, debit)
	}
}

func TestMergeExpense(t *testing.T) {
	balances := []Balance{
		{UserID: "u1", TotalCredit: 100, TotalDebit: 50},
		{UserID: "u2", TotalCredit: 30, TotalDebit: 80},
	}

	expense := Expense{ID: "e1", PayeeID: "u2", Amount: 40, ParticipantIDs: []UserID{"u1", "u2"}}

	got, err := MergeExpense(expense, balances)
	if err != nil {
		t.Fatalf("MergeExpense() error = %v", err)
	}

	balancesEqual(t, got, []Balance{
		{UserID: "u1", TotalCredit: 100, TotalDebit: 70},
		{UserID: "u2", TotalCredit: 70, TotalDebit: 100},
	})

	// Input must stay untouched.
	balancesEqual(t, balances, []Balance{
		{UserID: "u1", TotalCredit: 100, TotalDebit: 50},
		{UserID: "u2", TotalCredit: 30, TotalDebit: 80},
	})
}

func TestMergeExpenseUnknownUsers(t *testing.T) {
	balances := []Balance{{UserID: "u1"}, {UserID: "u2"}}

	tests := []struct {
		name    string
		expense Expense
	}{
		{
			name:    "unknown payee",
			expense: Expense{ID: "e1", PayeeID: "ghost", Amount: 10, ParticipantIDs: []UserID{"u1"}},
		},
		{
			name:    "unknown participant",
			expense: Expense{ID: "e2", PayeeID: "u1", Amount: 10, ParticipantIDs: []UserID{"u2", "ghost"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MergeExpense(tt.expense, balances); !errors.Is(err, ErrUnknownParticipant) {
				t.Errorf("error = %v, want ErrUnknownParticipant", err)
			}
		})
	}
}

// Merging a new expense into previously computed balances must agree
// with recomputing everything from scratch.
func TestMergeMatchesRecompute(t *testing.T) {
	history := []Expense{
		{ID: "e1", PayeeID: "u1", Amount: 100, ParticipantIDs: []UserID{"u2", "u3"}},
		{ID: "e2", PayeeID: "u2", Amount: 60, ParticipantIDs: []UserID{"u1", "u2", "u3"}},
	}
	next := Expense{ID: "e3", PayeeID: "u3", Amount: 45, ParticipantIDs: []UserID{"u1", "u3"}}

	base, err := CalculateBalances(history)
	if err != nil {
		t.Fatalf("CalculateBalances(history) error = %v", err)
	}
	merged, err := MergeExpense(next, base)
	if err != nil {
		t.Fatalf("MergeExpense() error = %v", err)
	}
	recomputed, err := CalculateBalances(append(history, next))
	if err != nil {
		t.Fatalf("CalculateBalances(history+next) error = %v", err)
	}

	balancesEqual(t, merged, recomputed)
}
