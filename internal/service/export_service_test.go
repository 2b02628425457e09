package service

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jvaler-dev/sga-console-api/internal/models"
	"github.com/jvaler-dev/sga-console-api/pkg/jobs"
	"github.com/jvaler-dev/sga-console-api/pkg/storage"
)

func newExportService(t *testing.T, s *memStore) *ExportService {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)

	return NewExportService(ExportCollections{
		Students:    newColl[models.Student](t, s, models.CollectionStudents, nil),
		Teachers:    newColl[models.Teacher](t, s, models.CollectionTeachers, nil),
		Courses:     newColl[models.Course](t, s, models.CollectionCourses, nil),
		Enrollments: newColl[models.Enrollment](t, s, models.CollectionEnrollments, nil),
		Roles:       newColl[models.Role](t, s, models.CollectionRoles, nil),
		Grades:      newColl[models.Grade](t, s, models.CollectionGrades, nil),
		Attendance:  newColl[models.Attendance](t, s, models.CollectionAttendance, nil),
	}, files, signer, "/api/v1", zap.NewNop())
}

func TestRenderStudentsCSV(t *testing.T) {
	s := newMemStore()
	newColl(t, s, models.CollectionStudents, []models.Student{
		{ID: 1, Nombres: "Ana", Apellidos: "Lopez", DNI: "12345678", Email: "ana@colegio.edu.pe", Grado: "3ro", Seccion: "A", Usuario: "alopez"},
	})
	svc := newExportService(t, s)

	payload, filename, contentType, err := svc.Render(context.Background(), models.CollectionStudents, FormatCSV)
	require.NoError(t, err)
	require.Equal(t, "estudiantes.csv", filename)
	require.Equal(t, "text/csv; charset=utf-8", contentType)
	require.Equal(t,
		"Nombres,Apellidos,DNI,Email,Grado,Sección,Usuario\n"+
			`"Ana","Lopez","12345678","ana@colegio.edu.pe","3ro","A","alopez"`,
		string(payload))
}

func TestRenderEnrollmentsJSON(t *testing.T) {
	s := newMemStore()
	newColl(t, s, models.CollectionEnrollments, []models.Enrollment{
		{ID: 7, CodigoMatricula: "MAT-001", Estudiante: "Ana Lopez", Estado: models.EnrollmentActive},
	})
	svc := newExportService(t, s)

	payload, filename, contentType, err := svc.Render(context.Background(), models.CollectionEnrollments, FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "matriculas.json", filename)
	require.Equal(t, "application/json", contentType)

	var records []models.Enrollment
	require.NoError(t, json.Unmarshal(payload, &records))
	require.Len(t, records, 1)
	require.Equal(t, "MAT-001", records[0].CodigoMatricula)
}

func TestRenderGradesPDF(t *testing.T) {
	s := newMemStore()
	newColl(t, s, models.CollectionGrades, []models.Grade{
		{ID: 1, Estudiante: "Ana Lopez", Curso: "Matemática", Trimestre: "1er Trimestre", Nota: 15.5},
	})
	svc := newExportService(t, s)

	payload, filename, contentType, err := svc.Render(context.Background(), models.CollectionGrades, FormatPDF)
	require.NoError(t, err)
	require.Equal(t, "calificaciones.pdf", filename)
	require.Equal(t, "application/pdf", contentType)
	require.NotEmpty(t, payload)
}

func TestRenderUnknownCollectionAndFormat(t *testing.T) {
	svc := newExportService(t, newMemStore())

	_, _, _, err := svc.Render(context.Background(), "inventario", FormatCSV)
	require.Error(t, err)

	_, _, _, err = svc.Render(context.Background(), models.CollectionStudents, "xml")
	require.Error(t, err)
}

func TestRenderBundleJSON(t *testing.T) {
	s := newMemStore()
	newColl(t, s, models.CollectionStudents, []models.Student{{ID: 1, Nombres: "Ana"}})
	newColl(t, s, models.CollectionGrades, []models.Grade{{ID: 2, Estudiante: "Ana", Nota: 14}})
	svc := newExportService(t, s)

	payload, filename, err := svc.RenderBundleJSON(context.Background())
	require.NoError(t, err)
	require.Equal(t, "datos_completos.json", filename)

	var bundle map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &bundle))
	for _, key := range models.EntityCollections {
		require.Contains(t, bundle, key)
	}
}

func TestScheduleBundleCSV(t *testing.T) {
	s := newMemStore()
	newColl(t, s, models.CollectionStudents, []models.Student{{ID: 1, Nombres: "Ana", Apellidos: "Lopez"}})
	svc := newExportService(t, s)

	queue := jobs.NewQueue("exports-test", svc.HandleJob, jobs.QueueConfig{Workers: 1})
	queue.Start(context.Background())
	defer queue.Stop()
	svc.SetQueue(queue)

	files, err := svc.ScheduleBundleCSV(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 5)
	require.Equal(t, []string{
		models.CollectionStudents,
		models.CollectionTeachers,
		models.CollectionCourses,
		models.CollectionEnrollments,
		models.CollectionRoles,
	}, collectionsOf(files))
	for _, f := range files {
		require.Contains(t, f.URL, "/api/v1/reportes/descargas/")
	}

	// the queue writes the files as it works through them
	require.Eventually(t, func() bool {
		for _, f := range files {
			file, _, err := svc.OpenDownload(f.Token)
			if err != nil {
				return false
			}
			file.Close()
		}
		return true
	}, 5*time.Second, 50*time.Millisecond)

	file, name, err := svc.OpenDownload(files[0].Token)
	require.NoError(t, err)
	defer file.Close()
	require.Equal(t, files[0].Filename, name)

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	require.Contains(t, string(content), `"Ana","Lopez"`)
}

func TestScheduleBundleCSVRequiresQueue(t *testing.T) {
	svc := newExportService(t, newMemStore())
	_, err := svc.ScheduleBundleCSV(context.Background())
	require.Error(t, err)
}

func TestOpenDownloadRejectsBadToken(t *testing.T) {
	svc := newExportService(t, newMemStore())
	_, _, err := svc.OpenDownload("bogus-token")
	require.Error(t, err)
}

func collectionsOf(files []ExportFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Collection)
	}
	return out
}
