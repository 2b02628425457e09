package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jvaler-dev/sga-console-api/internal/middleware"
	"github.com/jvaler-dev/sga-console-api/internal/models"
	"github.com/jvaler-dev/sga-console-api/internal/service"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Health      *HealthHandler
	Students    *CrudHandler[models.Student]
	Teachers    *CrudHandler[models.Teacher]
	Courses     *CrudHandler[models.Course]
	Enrollments *CrudHandler[models.Enrollment]
	Roles       *CrudHandler[models.Role]
	Grades      *CrudHandler[models.Grade]
	Attendance  *CrudHandler[models.Attendance]
	Exports     *ExportHandler
}

// RegisterRoutes mounts the API under the configured prefix.
//
// Access rules: administrativo reaches everything; docente owns
// calificaciones and asistencias and may read estudiantes and cursos.
// Signed export downloads carry their own token and skip JWT.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, authSvc *service.AuthService) {
	api := r.Group(prefix)

	api.GET("/salud", h.Health.Health)

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/cuentas", h.Auth.CreateAccount)

	api.GET("/reportes/descargas/:token", h.Exports.Download)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))

	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	adminOrTeacher := middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher)

	mountCollection(protected, models.CollectionStudents, h.Students, adminOrTeacher, adminOnly)
	mountCollection(protected, models.CollectionTeachers, h.Teachers, adminOnly, adminOnly)
	mountCollection(protected, models.CollectionCourses, h.Courses, adminOrTeacher, adminOnly)
	mountCollection(protected, models.CollectionEnrollments, h.Enrollments, adminOnly, adminOnly)
	mountCollection(protected, models.CollectionRoles, h.Roles, adminOnly, adminOnly)
	mountCollection(protected, models.CollectionGrades, h.Grades, adminOrTeacher, adminOrTeacher)
	mountCollection(protected, models.CollectionAttendance, h.Attendance, adminOrTeacher, adminOrTeacher)

	reports := protected.Group("/reportes", adminOnly)
	reports.GET("/:collection", h.Exports.Export)
	reports.POST("/todo", h.Exports.ExportAll)
}

func mountCollection[T any](rg *gin.RouterGroup, path string, h *CrudHandler[T], read, write gin.HandlerFunc) {
	rg.GET("/"+path, read, h.List)
	rg.POST("/"+path, write, h.Create)
	rg.PUT("/"+path+"/:id", write, h.Update)
	rg.DELETE("/"+path+"/:id", write, h.Delete)
}
