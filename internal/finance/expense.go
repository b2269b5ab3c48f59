// Package finance implements the bookkeeping core for shared expenses:
// folding a group's expenses into per-user balances and deriving the
// minimal set of payments that settles them.
//
// All operations are pure: inputs are never mutated and every call
// returns freshly allocated output, so callers may run them
// concurrently over their own snapshots.
package finance

// UserID identifies a group member. It is an opaque token; the package
// never interprets its contents.
type UserID = string

// ExpenseStatus tracks the approval state of an expense.
type ExpenseStatus string

const (
	StatusPending  ExpenseStatus = "pending"
	StatusAccepted ExpenseStatus = "accepted"
	StatusRejected ExpenseStatus = "rejected"
)

// Expense represents one payment made on behalf of a set of participants.
// Expenses are created and validated outside this package and are never
// modified by it.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// PayeeID is the user who fronted the money and is owed reimbursement.
	PayeeID UserID

	// SubmittedByID is the user who recorded the expense, which may
	// differ from the payee.
	SubmittedByID UserID

	// Amount is the full monetary value of the expense. Non-negative.
	Amount float64

	// Date is the Unix timestamp of when the expense occurred.
	Date int64

	// Description is a human-readable summary (e.g., "Groceries").
	Description string

	// Category is a free-form tag for reporting (e.g., "food").
	Category string

	// Status is the approval state. Only accepted expenses affect balances.
	Status ExpenseStatus

	// ParticipantIDs lists the users who benefited and share the cost
	// equally. Must be non-empty. The payee may appear here too, in
	// which case they owe their own share like everyone else.
	ParticipantIDs []UserID

	// CreatedAt is the Unix timestamp of when the record was created.
	CreatedAt int64
}
