package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError мапит бизнес-ошибки сервисов на HTTP-статусы.
// Всё неизвестное считается ошибкой хранилища и уходит как 500
// без деталей наружу.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrTeacherNotEligible),
		errors.Is(err, service.ErrNotATeacher),
		errors.Is(err, service.ErrNotAStudent),
		errors.Is(err, service.ErrAlreadyEnrolled):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSubjectNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrNotEnrolled):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidDays),
		errors.Is(err, service.ErrInvalidTimeRange),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidFee),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrUsernameTaken):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("Internal error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
