package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
)

type createGroupRequest struct {
	Name      string          `json:"name" validate:"required,max=150"`
	SubjectID int64           `json:"subject_id" validate:"required"`
	TeacherID int64           `json:"teacher_id" validate:"required"`
	RoomID    int64           `json:"room_id" validate:"required"`
	Days      string          `json:"days" validate:"required"`
	StartTime model.TimeOfDay `json:"start_time"`
	EndTime   model.TimeOfDay `json:"end_time"`
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	group, err := s.groups.CreateGroup(r.Context(), req.Name, req.SubjectID, req.TeacherID, req.RoomID, req.Days, req.StartTime, req.EndTime)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, group)
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groups.ListGroups(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		badRequest(w, err)
		return
	}

	group, err := s.groups.GetGroup(r.Context(), groupID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (s *Server) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		badRequest(w, err)
		return
	}

	if err := s.groups.DeleteGroup(r.Context(), groupID); err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGroupRoster(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		badRequest(w, err)
		return
	}

	roster, err := s.enrollments.GroupRoster(r.Context(), groupID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

// handleGroupTimetable рендерит недельную сетку группы в PNG
func (s *Server) handleGroupTimetable(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlID(r, "groupID")
	if err != nil {
		badRequest(w, err)
		return
	}

	group, err := s.groups.GetGroup(r.Context(), groupID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := renderWeekImage(w, group); err != nil {
		s.logger.Error("Render timetable", zap.Error(err))
	}
}
