package http

import (
	"net/http"

	"github.com/ustozhub/tutorcenter/internal/model"
)

type registerRequest struct {
	Username  string     `json:"username" validate:"required,min=3,max=64"`
	Password  string     `json:"password" validate:"required,min=6"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone" validate:"max=15"`
	Role      model.Role `json:"role" validate:"required"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Password, req.FirstName, req.LastName, req.Phone, req.Role)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := urlID(r, "userID")
	if err != nil {
		badRequest(w, err)
		return
	}

	user, err := s.users.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	role := model.Role(r.URL.Query().Get("role"))

	users, err := s.users.ListByRole(r.Context(), role)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	user, err := s.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}
