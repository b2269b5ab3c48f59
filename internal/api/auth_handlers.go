package api

import "net/http"

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := s.decodeRequest(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	user, token, err := s.auths.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: toUserResponse(user)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := s.decodeRequest(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	user, token, err := s.auths.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}
