package finance

import (
	"math"
	"sort"
)

// Debt is one directed payment instruction: the debtor pays the
// creditor the given amount. Amount is always positive.
type Debt struct {
	CreditorID UserID
	DebtorID   UserID
	Amount     float64
}

// settleEpsilon is the tolerance below which a remaining balance is
// considered settled. Guards against float64 noise producing spurious
// near-zero debts.
const settleEpsilon = 1e-9

// CalculateDebts derives the minimal settlement plan for a set of
// balances: a list of debts that, once paid, drives every user's net
// balance to zero, using at most N-1 transactions for N users with a
// non-zero net.
//
// It sorts users by net balance descending (stable, so equal nets keep
// their input order) and sweeps two cursors toward each other: the
// front cursor points at the largest remaining creditor, the back
// cursor at the largest remaining debtor. Each step settles
// min(credit, debit) between the pair and advances whichever side
// reached zero, or both when the amounts match exactly. Because total
// credit equals total debit across a closed balance set, the sweep
// always terminates with every net at zero. Zero-amount debts are
// never emitted; users already at net zero are skipped by the
// equality branch.
func CalculateDebts(balances []Balance) []Debt {
	type remaining struct {
		userID UserID
		net    float64
	}

	nets := make([]remaining, len(balances))
	for i, b := range balances {
		nets[i] = remaining{userID: b.UserID, net: b.Net()}
	}
	sort.SliceStable(nets, func(i, j int) bool {
		return nets[i].net > nets[j].net
	})

	var debts []Debt
	creditIndex, debitIndex := 0, len(nets)-1
	for creditIndex < debitIndex {
		credit := nets[creditIndex].net
		debit := -nets[debitIndex].net
		amount := math.Min(credit, debit)
		if amount > settleEpsilon {
			debts = append(debts, Debt{
				CreditorID: nets[creditIndex].userID,
				DebtorID:   nets[debitIndex].userID,
				Amount:     amount,
			})
		}
		nets[creditIndex].net -= amount
		nets[debitIndex].net += amount
		// At least one side is fully settled each step; both are when
		// the credit and debit matched exactly.
		if credit <= debit {
			creditIndex++
		}
		if credit >= debit {
			debitIndex--
		}
	}
	return debts
}
