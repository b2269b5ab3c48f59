// Package models defines the persistent domain records for settleup:
// users, groups, and email invitations.
//
// The expense bookkeeping types (Expense, Balance, Debt, GroupFinances)
// live in internal/finance alongside the algorithms that operate on
// them; a Group carries a finance.GroupFinances snapshot for its money
// state. Relationships are expressed through ID strings rather than
// pointers to keep records serializable and free of cycles.
package models
