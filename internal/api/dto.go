package api

import (
	"settleup/internal/finance"
	"settleup/internal/models"
)

type userResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	CreatedAt   int64  `json:"created_at"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type invitationResponse struct {
	ID           string `json:"id"`
	GroupID      string `json:"group_id"`
	InviterID    string `json:"inviter_id"`
	InviteeEmail string `json:"invitee_email"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
}

type groupResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	CreatorID   string               `json:"creator_id"`
	Members     []userResponse       `json:"members"`
	Invitations []invitationResponse `json:"invitations,omitempty"`
	Finances    *financesResponse    `json:"finances,omitempty"`
	CreatedAt   int64                `json:"created_at"`
	UpdatedAt   int64                `json:"updated_at"`
}

type expenseResponse struct {
	ID             string   `json:"id"`
	PayeeID        string   `json:"payee_id"`
	SubmittedByID  string   `json:"submitted_by_id"`
	Amount         float64  `json:"amount"`
	Date           int64    `json:"date"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Status         string   `json:"status"`
	ParticipantIDs []string `json:"participant_ids"`
	CreatedAt      int64    `json:"created_at"`
}

type balanceResponse struct {
	UserID      string  `json:"user_id"`
	TotalCredit float64 `json:"total_credit"`
	TotalDebit  float64 `json:"total_debit"`
}

type debtResponse struct {
	CreditorID string  `json:"creditor_id"`
	DebtorID   string  `json:"debtor_id"`
	Amount     float64 `json:"amount"`
}

type financesResponse struct {
	Expenses []expenseResponse `json:"expenses"`
	Balances []balanceResponse `json:"balances"`
	Debts    []debtResponse    `json:"debts"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
	}
}

func toInvitationResponse(inv *models.EmailInvitation) invitationResponse {
	return invitationResponse{
		ID:           inv.ID,
		GroupID:      inv.GroupID,
		InviterID:    inv.InviterID,
		InviteeEmail: inv.InviteeEmail,
		Status:       string(inv.Status),
		CreatedAt:    inv.CreatedAt,
	}
}

func toGroupResponse(g *models.Group) groupResponse {
	members := make([]userResponse, len(g.Members))
	for i := range g.Members {
		members[i] = toUserResponse(&g.Members[i])
	}
	invitations := make([]invitationResponse, len(g.Invitations))
	for i := range g.Invitations {
		invitations[i] = toInvitationResponse(&g.Invitations[i])
	}
	return groupResponse{
		ID:          g.ID,
		Name:        g.Name,
		CreatorID:   g.CreatorID,
		Members:     members,
		Invitations: invitations,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toFinancesResponse(f finance.GroupFinances) financesResponse {
	resp := financesResponse{
		Expenses: make([]expenseResponse, len(f.Expenses)),
		Balances: make([]balanceResponse, len(f.Balances)),
		Debts:    make([]debtResponse, len(f.Debts)),
	}
	for i, e := range f.Expenses {
		resp.Expenses[i] = expenseResponse{
			ID:             e.ID,
			PayeeID:        e.PayeeID,
			SubmittedByID:  e.SubmittedByID,
			Amount:         e.Amount,
			Date:           e.Date,
			Description:    e.Description,
			Category:       e.Category,
			Status:         string(e.Status),
			ParticipantIDs: e.ParticipantIDs,
			CreatedAt:      e.CreatedAt,
		}
	}
	for i, b := range f.Balances {
		resp.Balances[i] = balanceResponse{
			UserID:      b.UserID,
			TotalCredit: b.TotalCredit,
			TotalDebit:  b.TotalDebit,
		}
	}
	for i, d := range f.Debts {
		resp.Debts[i] = debtResponse{
			CreditorID: d.CreditorID,
			DebtorID:   d.DebtorID,
			Amount:     d.Amount,
		}
	}
	return resp
}
