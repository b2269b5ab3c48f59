package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"settleup/internal/auth"
	"settleup/internal/finance"
	"settleup/internal/service"
	"settleup/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP status codes and emits a JSON
// error body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailExists),
		errors.Is(err, service.ErrInvitationClosed):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNotMember),
		errors.Is(err, service.ErrNotInvitee):
		status = http.StatusForbidden
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, finance.ErrExpenseNotAccepted),
		errors.Is(err, finance.ErrUnknownParticipant):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, finance.ErrNoParticipants),
		errors.Is(err, auth.ErrWeakPassword):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err)
		// Do not leak internals to the client.
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeRequest parses and validates a JSON request body.
func (s *Server) decodeRequest(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return s.validate.Struct(dst)
}

// writeDecodeError reports a malformed or invalid request body.
func writeDecodeError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verrs.Error()})
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
}
