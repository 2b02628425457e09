package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jvaler-dev/sga-console-api/internal/models"
	"github.com/jvaler-dev/sga-console-api/internal/repository"
	appErrors "github.com/jvaler-dev/sga-console-api/pkg/errors"
)

// Per-entity CRUD services: the generic core plus each screen's schema.
// Search fields match what the console's search boxes scanned.

func NewStudentService(coll *repository.Collection[models.Student], logger *zap.Logger) *CollectionService[models.Student] {
	return NewCollectionService(coll, Schema[models.Student]{
		ID:    func(r *models.Student) int64 { return r.ID },
		SetID: func(r *models.Student, id int64) { r.ID = id },
		SearchText: func(r *models.Student) []string {
			return []string{r.Nombres, r.Apellidos, r.DNI}
		},
	}, logger)
}

func NewTeacherService(coll *repository.Collection[models.Teacher], logger *zap.Logger) *CollectionService[models.Teacher] {
	return NewCollectionService(coll, Schema[models.Teacher]{
		ID:    func(r *models.Teacher) int64 { return r.ID },
		SetID: func(r *models.Teacher, id int64) { r.ID = id },
		SearchText: func(r *models.Teacher) []string {
			return []string{r.Nombres, r.Apellidos, r.DNI, r.Especialidad}
		},
	}, logger)
}

func NewCourseService(coll *repository.Collection[models.Course], logger *zap.Logger) *CollectionService[models.Course] {
	return NewCollectionService(coll, Schema[models.Course]{
		ID:    func(r *models.Course) int64 { return r.ID },
		SetID: func(r *models.Course, id int64) { r.ID = id },
		SearchText: func(r *models.Course) []string {
			return []string{r.Nombre, r.Codigo, r.Docente}
		},
	}, logger)
}

func NewEnrollmentService(coll *repository.Collection[models.Enrollment], logger *zap.Logger) *CollectionService[models.Enrollment] {
	return NewCollectionService(coll, Schema[models.Enrollment]{
		ID:    func(r *models.Enrollment) int64 { return r.ID },
		SetID: func(r *models.Enrollment, id int64) { r.ID = id },
		SearchText: func(r *models.Enrollment) []string {
			return []string{r.Estudiante, r.DNIEstudiante, r.CodigoMatricula}
		},
		Normalize: func(r *models.Enrollment) error {
			if r.Estado == "" {
				r.Estado = models.EnrollmentActive
			}
			if !r.Estado.Valid() {
				return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("estado de matrícula inválido: %s", r.Estado))
			}
			return nil
		},
	}, logger)
}

func NewRoleService(coll *repository.Collection[models.Role], logger *zap.Logger) *CollectionService[models.Role] {
	return NewCollectionService(coll, Schema[models.Role]{
		ID:    func(r *models.Role) int64 { return r.ID },
		SetID: func(r *models.Role, id int64) { r.ID = id },
		SearchText: func(r *models.Role) []string {
			return []string{r.Nombre, r.Descripcion}
		},
		Normalize: func(r *models.Role) error {
			for _, p := range r.Permisos {
				if !models.PermissionAllowed(p) {
					return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("permiso desconocido: %s", p))
				}
			}
			return nil
		},
	}, logger)
}

func NewGradeService(coll *repository.Collection[models.Grade], logger *zap.Logger) *CollectionService[models.Grade] {
	return NewCollectionService(coll, Schema[models.Grade]{
		ID:    func(r *models.Grade) int64 { return r.ID },
		SetID: func(r *models.Grade, id int64) { r.ID = id },
		SearchText: func(r *models.Grade) []string {
			return []string{r.Estudiante, r.Curso}
		},
		Normalize: func(r *models.Grade) error {
			if r.Trimestre == "" {
				r.Trimestre = models.GradeTerms[0]
			}
			if !models.GradeTermValid(r.Trimestre) {
				return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("trimestre inválido: %s", r.Trimestre))
			}
			if r.Nota < models.GradeMin {
				r.Nota = models.GradeMin
			}
			if r.Nota > models.GradeMax {
				r.Nota = models.GradeMax
			}
			return nil
		},
	}, logger)
}

func NewAttendanceService(coll *repository.Collection[models.Attendance], logger *zap.Logger) *CollectionService[models.Attendance] {
	return NewCollectionService(coll, Schema[models.Attendance]{
		ID:    func(r *models.Attendance) int64 { return r.ID },
		SetID: func(r *models.Attendance, id int64) { r.ID = id },
		SearchText: func(r *models.Attendance) []string {
			return []string{r.Estudiante, r.Curso}
		},
		Normalize: func(r *models.Attendance) error {
			if !r.Estado.Valid() {
				return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("estado de asistencia inválido: %s", r.Estado))
			}
			return nil
		},
	}, logger)
}
