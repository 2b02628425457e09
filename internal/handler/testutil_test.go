package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jvaler-dev/sga-console-api/internal/models"
	"github.com/jvaler-dev/sga-console-api/internal/repository"
	"github.com/jvaler-dev/sga-console-api/internal/service"
	"github.com/jvaler-dev/sga-console-api/pkg/jobs"
	"github.com/jvaler-dev/sga-console-api/pkg/storage"
)

type jsonObject = map[string]interface{}

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	return s.data[key], nil
}

func (s *memStore) Put(_ context.Context, key string, payload []byte) error {
	s.data[key] = payload
	return nil
}

// testApp wires the full router over an in-memory store.
type testApp struct {
	router *gin.Engine
	store  *memStore
	auth   *service.AuthService
	queue  *jobs.Queue
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := newMemStore()
	logr := zap.NewNop()

	students := repository.NewCollection[models.Student](s, models.CollectionStudents, logr)
	teachers := repository.NewCollection[models.Teacher](s, models.CollectionTeachers, logr)
	courses := repository.NewCollection[models.Course](s, models.CollectionCourses, logr)
	enrollments := repository.NewCollection[models.Enrollment](s, models.CollectionEnrollments, logr)
	roles := repository.NewCollection[models.Role](s, models.CollectionRoles, logr)
	grades := repository.NewCollection[models.Grade](s, models.CollectionGrades, logr)
	attendance := repository.NewCollection[models.Attendance](s, models.CollectionAttendance, logr)
	admins := repository.NewCollection[models.Admin](s, models.CollectionAdmins, logr)

	authSvc := service.NewAuthService(admins, teachers, students, nil, logr, service.AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "sga-console-api",
	})
	accountSvc := service.NewAccountService(admins, nil, logr)

	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	exportSvc := service.NewExportService(service.ExportCollections{
		Students:    students,
		Teachers:    teachers,
		Courses:     courses,
		Enrollments: enrollments,
		Roles:       roles,
		Grades:      grades,
		Attendance:  attendance,
	}, files, signer, "/api/v1", logr)

	queue := jobs.NewQueue("exports-test", exportSvc.HandleJob, jobs.QueueConfig{Workers: 1})
	queue.Start(context.Background())
	t.Cleanup(queue.Stop)
	exportSvc.SetQueue(queue)

	r := gin.New()
	RegisterRoutes(r, "/api/v1", Handlers{
		Auth:        NewAuthHandler(authSvc, accountSvc),
		Health:      NewHealthHandler("test"),
		Students:    NewCrudHandler(service.NewStudentService(students, logr)),
		Teachers:    NewCrudHandler(service.NewTeacherService(teachers, logr)),
		Courses:     NewCrudHandler(service.NewCourseService(courses, logr)),
		Enrollments: NewCrudHandler(service.NewEnrollmentService(enrollments, logr)),
		Roles:       NewCrudHandler(service.NewRoleService(roles, logr)),
		Grades:      NewCrudHandler(service.NewGradeService(grades, logr)),
		Attendance:  NewCrudHandler(service.NewAttendanceService(attendance, logr)),
		Exports:     NewExportHandler(exportSvc, nil),
	}, authSvc)

	return &testApp{router: r, store: s, auth: authSvc, queue: queue}
}

func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T, role models.UserRole, usuario, contrasena string) string {
	t.Helper()
	res, err := a.auth.Login(context.Background(), models.LoginRequest{
		Role: role, Usuario: usuario, Contrasena: contrasena,
	})
	require.NoError(t, err)
	return res.AccessToken
}

func (a *testApp) adminToken(t *testing.T) string {
	return a.login(t, models.RoleAdmin, "admin", "admin123")
}

func (a *testApp) teacherToken(t *testing.T) string {
	return a.login(t, models.RoleTeacher, "docente", "docente123")
}

func (a *testApp) studentToken(t *testing.T) string {
	return a.login(t, models.RoleStudent, "estudiante", "estudiante123")
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}
