package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"settleup/internal/finance"
	"settleup/internal/middleware"
)

type createGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

type addExpenseRequest struct {
	PayeeID        string   `json:"payee_id" validate:"required"`
	Amount         float64  `json:"amount" validate:"gte=0"`
	Date           int64    `json:"date"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Status         string   `json:"status" validate:"required,oneof=pending accepted rejected"`
	ParticipantIDs []string `json:"participant_ids" validate:"required,min=1"`
}

type inviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type respondInvitationRequest struct {
	Accept bool `json:"accept"`
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := s.decodeRequest(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	group, err := s.groups.CreateGroup(r.Context(), middleware.GetUserID(r.Context()), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGroupResponse(group))
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groups.ListGroups(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]groupResponse, len(groups))
	for i, g := range groups {
		resp[i] = toGroupResponse(g)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := s.groups.GetGroup(r.Context(), chi.URLParam(r, "groupID"), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := toGroupResponse(group)
	finances := toFinancesResponse(group.Finances)
	resp.Finances = &finances
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetFinances(w http.ResponseWriter, r *http.Request) {
	finances, err := s.groups.GetFinances(r.Context(), chi.URLParam(r, "groupID"), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toFinancesResponse(finances))
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if err := s.decodeRequest(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	expense := finance.Expense{
		PayeeID:        req.PayeeID,
		Amount:         req.Amount,
		Date:           req.Date,
		Description:    req.Description,
		Category:       req.Category,
		Status:         finance.ExpenseStatus(req.Status),
		ParticipantIDs: req.ParticipantIDs,
	}

	finances, err := s.groups.AddExpense(r.Context(), chi.URLParam(r, "groupID"), middleware.GetUserID(r.Context()), expense)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFinancesResponse(finances))
}

func (s *Server) handleInviteMember(w http.ResponseWriter, r *http.Request) {
	var req inviteMemberRequest
	if err := s.decodeRequest(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	inv, err := s.groups.InviteMember(r.Context(), chi.URLParam(r, "groupID"), middleware.GetUserID(r.Context()), req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInvitationResponse(inv))
}

func (s *Server) handleListInvitations(w http.ResponseWriter, r *http.Request) {
	invitations, err := s.groups.ListInvitations(r.Context(), middleware.GetEmail(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]invitationResponse, len(invitations))
	for i, inv := range invitations {
		resp[i] = toInvitationResponse(inv)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRespondToInvitation(w http.ResponseWriter, r *http.Request) {
	var req respondInvitationRequest
	if err := s.decodeRequest(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	err := s.groups.RespondToInvitation(r.Context(), chi.URLParam(r, "invitationID"), middleware.GetUserID(r.Context()), req.Accept)
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
