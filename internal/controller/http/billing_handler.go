package http

import (
	"net/http"

	"github.com/ustozhub/tutorcenter/internal/model"
)

// canViewStudent: свои данные видит сам студент, чужие — только персонал
func canViewStudent(r *http.Request, studentID int64) bool {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		return false
	}
	if claims.Role == model.RoleManager || claims.Role == model.RoleAdministrator {
		return true
	}
	return claims.UserID == studentID
}

type recordPaymentRequest struct {
	StudentID int64 `json:"student_id" validate:"required"`
	GroupID   int64 `json:"group_id" validate:"required"`
	Amount    int64 `json:"amount" validate:"required"` // в тийинах
	Month     int   `json:"month" validate:"required,min=1,max=12"`
	Year      int   `json:"year" validate:"required"`
}

func (s *Server) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	payment, err := s.billing.RecordPayment(r.Context(), req.StudentID, req.GroupID, req.Amount, req.Month, req.Year)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, payment)
}

type debtResponse struct {
	StudentID int64 `json:"student_id"`
	GroupID   int64 `json:"group_id"`
	Debt      int64 `json:"debt"`
}

func (s *Server) handleDebt(w http.ResponseWriter, r *http.Request) {
	studentID, err := urlID(r, "studentID")
	if err != nil {
		badRequest(w, err)
		return
	}
	groupID, err := urlID(r, "groupID")
	if err != nil {
		badRequest(w, err)
		return
	}
	if !canViewStudent(r, studentID) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient role"})
		return
	}

	debt, err := s.billing.CalculateDebt(r.Context(), studentID, groupID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, debtResponse{StudentID: studentID, GroupID: groupID, Debt: debt})
}

func (s *Server) handleStatement(w http.ResponseWriter, r *http.Request) {
	studentID, err := urlID(r, "studentID")
	if err != nil {
		badRequest(w, err)
		return
	}
	if !canViewStudent(r, studentID) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient role"})
		return
	}

	rows, err := s.billing.StudentStatement(r.Context(), studentID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	studentID, err := urlID(r, "studentID")
	if err != nil {
		badRequest(w, err)
		return
	}
	groupID, err := urlID(r, "groupID")
	if err != nil {
		badRequest(w, err)
		return
	}
	if !canViewStudent(r, studentID) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient role"})
		return
	}

	payments, err := s.billing.ListPayments(r.Context(), studentID, groupID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
