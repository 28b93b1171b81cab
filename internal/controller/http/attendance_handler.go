package http

import (
	"net/http"
	"time"
)

type markAttendanceRequest struct {
	StudentID int64  `json:"student_id" validate:"required"`
	GroupID   int64  `json:"group_id" validate:"required"`
	Date      string `json:"date" validate:"required"` // "2006-01-02"
	Present   bool   `json:"present"`
}

func (s *Server) handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req markAttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		badRequest(w, err)
		return
	}

	attendance, err := s.attendance.Mark(r.Context(), req.StudentID, req.GroupID, date, req.Present)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, attendance)
}

func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		badRequest(w, err)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		badRequest(w, err)
		return
	}

	list, err := s.attendance.ListByGroupAndDate(r.Context(), groupID, date)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
