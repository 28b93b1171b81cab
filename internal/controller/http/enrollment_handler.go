package http

import "net/http"

type preEnrollRequest struct {
	StudentID int64 `json:"student_id" validate:"required"`
	SubjectID int64 `json:"subject_id" validate:"required"`
}

func (s *Server) handlePreEnroll(w http.ResponseWriter, r *http.Request) {
	var req preEnrollRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	pre, err := s.enrollments.PreEnroll(r.Context(), req.StudentID, req.SubjectID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, pre)
}

func (s *Server) handleListPreEnrollments(w http.ResponseWriter, r *http.Request) {
	subjectID, err := urlID(r, "subjectID")
	if err != nil {
		badRequest(w, err)
		return
	}

	pres, err := s.enrollments.ListPreEnrollments(r.Context(), subjectID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, pres)
}

type enrollRequest struct {
	StudentID int64 `json:"student_id" validate:"required"`
	GroupID   int64 `json:"group_id" validate:"required"`
}

func (s *Server) handleEnroll(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	enrollment, err := s.enrollments.Enroll(r.Context(), req.StudentID, req.GroupID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, enrollment)
}
