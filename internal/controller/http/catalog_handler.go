package http

import "net/http"

type subjectRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description"`
	MonthlyFee  int64  `json:"monthly_fee" validate:"gte=0"` // в тийинах
}

func (s *Server) handleCreateSubject(w http.ResponseWriter, r *http.Request) {
	var req subjectRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	subject, err := s.catalog.CreateSubject(r.Context(), req.Name, req.Description, req.MonthlyFee)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, subject)
}

func (s *Server) handleListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := s.catalog.ListSubjects(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, subjects)
}

type roomRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	room, err := s.catalog.CreateRoom(r.Context(), req.Name, req.Capacity)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, room)
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.catalog.ListRooms(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

type eligibilityRequest struct {
	TeacherID int64 `json:"teacher_id" validate:"required"`
	SubjectID int64 `json:"subject_id" validate:"required"`
}

func (s *Server) handleGrantEligibility(w http.ResponseWriter, r *http.Request) {
	var req eligibilityRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	ts, err := s.catalog.GrantEligibility(r.Context(), req.TeacherID, req.SubjectID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, ts)
}

func (s *Server) handleRevokeEligibility(w http.ResponseWriter, r *http.Request) {
	var req eligibilityRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	if err := s.catalog.RevokeEligibility(r.Context(), req.TeacherID, req.SubjectID); err != nil {
		writeError(w, s.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListEligibilities(w http.ResponseWriter, r *http.Request) {
	teacherID, err := urlID(r, "teacherID")
	if err != nil {
		badRequest(w, err)
		return
	}

	list, err := s.catalog.ListTeacherEligibilities(r.Context(), teacherID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
