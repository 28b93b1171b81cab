package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
	"github.com/ustozhub/tutorcenter/internal/service"
)

// Server тонкий HTTP-адаптер над сервисами: разбирает запрос,
// дёргает сервис, мапит ошибку на статус. Логики здесь нет.
type Server struct {
	users       *service.UserService
	catalog     *service.CatalogService
	groups      *service.GroupService
	enrollments *service.EnrollmentService
	billing     *service.BillingService
	attendance  *service.AttendanceService
	tokens      *TokenIssuer
	logger      *zap.Logger
}

func NewServer(
	users *service.UserService,
	catalog *service.CatalogService,
	groups *service.GroupService,
	enrollments *service.EnrollmentService,
	billing *service.BillingService,
	attendance *service.AttendanceService,
	tokens *TokenIssuer,
	logger *zap.Logger,
) *Server {
	return &Server{
		users:       users,
		catalog:     catalog,
		groups:      groups,
		enrollments: enrollments,
		billing:     billing,
		attendance:  attendance,
		tokens:      tokens,
		logger:      logger,
	}
}

// Router собирает маршруты и middleware
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(httprate.LimitByIP(300, time.Minute))
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		// Справочники и операции бэк-офиса — только персонал
		staff := requireRole(model.RoleManager, model.RoleAdministrator)

		r.With(staff).Get("/users", s.handleListUsers)
		r.With(staff).Get("/users/{userID}", s.handleGetUser)

		r.Get("/subjects", s.handleListSubjects)
		r.With(staff).Post("/subjects", s.handleCreateSubject)

		r.Get("/rooms", s.handleListRooms)
		r.With(staff).Post("/rooms", s.handleCreateRoom)

		r.Get("/teachers/{teacherID}/eligibilities", s.handleListEligibilities)
		r.With(staff).Post("/eligibilities", s.handleGrantEligibility)
		r.With(staff).Delete("/eligibilities", s.handleRevokeEligibility)

		r.Get("/subjects/{subjectID}/pre-enrollments", s.handleListPreEnrollments)
		r.With(staff).Post("/pre-enrollments", s.handlePreEnroll)

		r.Get("/groups", s.handleListGroups)
		r.Get("/groups/{groupID}", s.handleGetGroup)
		r.Get("/groups/{groupID}/roster", s.handleGroupRoster)
		r.Get("/groups/{groupID}/timetable.png", s.handleGroupTimetable)
		r.With(staff).Post("/groups", s.handleCreateGroup)
		r.With(staff).Delete("/groups/{groupID}", s.handleDeleteGroup)

		r.With(staff).Post("/enrollments", s.handleEnroll)
		r.With(staff).Post("/payments", s.handleRecordPayment)

		// Долг и выписку видит персонал и сам студент
		r.Get("/students/{studentID}/groups/{groupID}/debt", s.handleDebt)
		r.Get("/students/{studentID}/statement", s.handleStatement)
		r.Get("/students/{studentID}/groups/{groupID}/payments", s.handleListPayments)

		r.With(staff).Post("/attendance", s.handleMarkAttendance)
		r.Get("/groups/{groupID}/attendance", s.handleListAttendance)
	})

	return r
}
