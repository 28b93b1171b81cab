package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/app"
	"github.com/ustozhub/tutorcenter/internal/config"
	httpcontroller "github.com/ustozhub/tutorcenter/internal/controller/http"
	"github.com/ustozhub/tutorcenter/internal/repository"
	"github.com/ustozhub/tutorcenter/internal/repository/base"
	"github.com/ustozhub/tutorcenter/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	userRepo := repository.NewUserRepository(pool, logger)
	subjectRepo := repository.NewSubjectRepository(pool, logger)
	teacherSubjectRepo := repository.NewTeacherSubjectRepository(pool, logger)
	roomRepo := repository.NewRoomRepository(pool, logger)
	preEnrollmentRepo := repository.NewPreEnrollmentRepository(pool, logger)
	groupRepo := repository.NewGroupRepository(pool, logger)
	scheduleRepo := repository.NewScheduleRepository(pool, logger)
	enrollmentRepo := repository.NewEnrollmentRepository(pool, logger)
	paymentRepo := repository.NewPaymentRepository(pool, logger)
	attendanceRepo := repository.NewAttendanceRepository(pool, logger)

	txm := base.NewTxManager(pool)

	users := service.NewUserService(userRepo, logger)
	catalog := service.NewCatalogService(userRepo, subjectRepo, roomRepo, teacherSubjectRepo, logger)
	groups := service.NewGroupService(txm, userRepo, subjectRepo, teacherSubjectRepo, roomRepo, groupRepo, scheduleRepo, preEnrollmentRepo, enrollmentRepo, logger)
	enrollments := service.NewEnrollmentService(userRepo, subjectRepo, groupRepo, preEnrollmentRepo, enrollmentRepo, logger)
	billing := service.NewBillingService(enrollmentRepo, paymentRepo, groupRepo, subjectRepo, logger)
	attendance := service.NewAttendanceService(enrollmentRepo, attendanceRepo, logger)

	tokens := httpcontroller.NewTokenIssuer(cfg.JWTSecret)
	server := httpcontroller.NewServer(users, catalog, groups, enrollments, billing, attendance, tokens, logger)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
