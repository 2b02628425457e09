package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jvaler-dev/sga-console-api/internal/handler"
	"github.com/jvaler-dev/sga-console-api/internal/middleware"
	"github.com/jvaler-dev/sga-console-api/internal/models"
	"github.com/jvaler-dev/sga-console-api/internal/repository"
	"github.com/jvaler-dev/sga-console-api/internal/service"
	"github.com/jvaler-dev/sga-console-api/internal/store"
	"github.com/jvaler-dev/sga-console-api/pkg/config"
	"github.com/jvaler-dev/sga-console-api/pkg/jobs"
	"github.com/jvaler-dev/sga-console-api/pkg/logger"
	corsmiddleware "github.com/jvaler-dev/sga-console-api/pkg/middleware/cors"
	reqidmiddleware "github.com/jvaler-dev/sga-console-api/pkg/middleware/requestid"
	"github.com/jvaler-dev/sga-console-api/pkg/storage"
)

const version = "1.0.0"

// @title SGA Console API
// @version 1.0.0
// @description School administration console backend
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	recordStore, err := newRecordStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to open record store", "driver", cfg.Storage.Driver, "error", err)
	}
	if metrics != nil {
		recordStore = store.Instrument(recordStore, metrics)
	}

	students := repository.NewCollection[models.Student](recordStore, models.CollectionStudents, logr)
	teachers := repository.NewCollection[models.Teacher](recordStore, models.CollectionTeachers, logr)
	courses := repository.NewCollection[models.Course](recordStore, models.CollectionCourses, logr)
	enrollments := repository.NewCollection[models.Enrollment](recordStore, models.CollectionEnrollments, logr)
	roles := repository.NewCollection[models.Role](recordStore, models.CollectionRoles, logr)
	grades := repository.NewCollection[models.Grade](recordStore, models.CollectionGrades, logr)
	attendance := repository.NewCollection[models.Attendance](recordStore, models.CollectionAttendance, logr)
	admins := repository.NewCollection[models.Admin](recordStore, models.CollectionAdmins, logr)

	validate := validator.New()

	authSvc := service.NewAuthService(admins, teachers, students, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	accountSvc := service.NewAccountService(admins, validate, logr)

	exportStorage, err := storage.NewLocalStorage(cfg.Export.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Export.SignedURLSecret, cfg.Export.SignedURLTTL)

	exportSvc := service.NewExportService(service.ExportCollections{
		Students:    students,
		Teachers:    teachers,
		Courses:     courses,
		Enrollments: enrollments,
		Roles:       roles,
		Grades:      grades,
		Attendance:  attendance,
	}, exportStorage, signer, cfg.APIPrefix, logr)

	exportQueue := jobs.NewQueue("exports", exportSvc.HandleJob, jobs.QueueConfig{
		Workers: 1,
		Spacing: cfg.Export.CSVStagger,
		Logger:  logr,
	})
	exportQueue.Start(context.Background())
	defer exportQueue.Stop()
	exportSvc.SetQueue(exportQueue)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metrics != nil {
		r.Use(middleware.Metrics(metrics))
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Auth:        handler.NewAuthHandler(authSvc, accountSvc),
		Health:      handler.NewHealthHandler(version),
		Students:    handler.NewCrudHandler(service.NewStudentService(students, logr)),
		Teachers:    handler.NewCrudHandler(service.NewTeacherService(teachers, logr)),
		Courses:     handler.NewCrudHandler(service.NewCourseService(courses, logr)),
		Enrollments: handler.NewCrudHandler(service.NewEnrollmentService(enrollments, logr)),
		Roles:       handler.NewCrudHandler(service.NewRoleService(roles, logr)),
		Grades:      handler.NewCrudHandler(service.NewGradeService(grades, logr)),
		Attendance:  handler.NewCrudHandler(service.NewAttendanceService(attendance, logr)),
		Exports:     handler.NewExportHandler(exportSvc, metrics),
	}, authSvc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "storage", cfg.Storage.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newRecordStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		return store.NewRedisStore(cfg.Redis)
	case config.DriverPostgres:
		return store.NewPostgresStore(cfg.Database)
	case config.DriverFile:
		return store.NewFileStore(cfg.Storage.DataDir)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
