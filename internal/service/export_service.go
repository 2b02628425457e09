package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jvaler-dev/sga-console-api/internal/models"
	"github.com/jvaler-dev/sga-console-api/internal/repository"
	appErrors "github.com/jvaler-dev/sga-console-api/pkg/errors"
	"github.com/jvaler-dev/sga-console-api/pkg/export"
	"github.com/jvaler-dev/sga-console-api/pkg/jobs"
	"github.com/jvaler-dev/sga-console-api/pkg/storage"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

const jobTypeRenderCSV = "render_csv"

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type jsonRenderer interface {
	Render(value interface{}) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is one rendered (or scheduled) export artifact.
type ExportFile struct {
	Collection string    `json:"collection"`
	Filename   string    `json:"filename"`
	Token      string    `json:"token"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// csvBundleCollections are the collections the multi-file CSV export covers,
// in download order.
var csvBundleCollections = []string{
	models.CollectionStudents,
	models.CollectionTeachers,
	models.CollectionCourses,
	models.CollectionEnrollments,
	models.CollectionRoles,
}

// ExportService renders collections to CSV, JSON and PDF. Single exports
// are returned inline; the multi-file CSV bundle goes through a
// single-worker queue so the files land spaced out instead of all at once.
type ExportService struct {
	students    *repository.Collection[models.Student]
	teachers    *repository.Collection[models.Teacher]
	courses     *repository.Collection[models.Course]
	enrollments *repository.Collection[models.Enrollment]
	roles       *repository.Collection[models.Role]
	grades      *repository.Collection[models.Grade]
	attendance  *repository.Collection[models.Attendance]

	storage fileStorage
	signer  *storage.SignedURLSigner
	csv     csvRenderer
	json    jsonRenderer
	pdf     pdfRenderer
	queue   *jobs.Queue
	logger  *zap.Logger

	apiPrefix string
}

// ExportCollections groups the persisted collections the exporter reads.
type ExportCollections struct {
	Students    *repository.Collection[models.Student]
	Teachers    *repository.Collection[models.Teacher]
	Courses     *repository.Collection[models.Course]
	Enrollments *repository.Collection[models.Enrollment]
	Roles       *repository.Collection[models.Role]
	Grades      *repository.Collection[models.Grade]
	Attendance  *repository.Collection[models.Attendance]
}

// NewExportService constructs an ExportService.
func NewExportService(colls ExportCollections, files fileStorage, signer *storage.SignedURLSigner, apiPrefix string, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students:    colls.Students,
		teachers:    colls.Teachers,
		courses:     colls.Courses,
		enrollments: colls.Enrollments,
		roles:       colls.Roles,
		grades:      colls.Grades,
		attendance:  colls.Attendance,
		storage:     files,
		signer:      signer,
		csv:         export.NewCSVExporter(),
		json:        export.NewJSONExporter(),
		pdf:         export.NewPDFExporter(),
		logger:      logger,
		apiPrefix:   apiPrefix,
	}
}

// SetQueue attaches the render queue used by the CSV bundle.
func (s *ExportService) SetQueue(q *jobs.Queue) {
	s.queue = q
}

// Render produces a single collection export in the requested format and
// returns the payload, suggested filename and content type.
func (s *ExportService) Render(ctx context.Context, collection, format string) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		dataset, err := s.dataset(ctx, collection)
		if err != nil {
			return nil, "", "", err
		}
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, collection + ".csv", "text/csv; charset=utf-8", nil

	case FormatJSON:
		records, err := s.records(ctx, collection)
		if err != nil {
			return nil, "", "", err
		}
		payload, err := s.json.Render(records)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render json")
		}
		return payload, collection + ".json", "application/json", nil

	case FormatPDF:
		dataset, err := s.dataset(ctx, collection)
		if err != nil {
			return nil, "", "", err
		}
		title := fmt.Sprintf("Reporte de %s", collection)
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, collection + ".pdf", "application/pdf", nil
	}
	return nil, "", "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("formato no soportado: %s", format))
}

// jsonBundle fixes the key order of the full JSON dump.
type jsonBundle struct {
	Estudiantes []models.Student    `json:"estudiantes"`
	Docentes    []models.Teacher    `json:"docentes"`
	Cursos      []models.Course     `json:"cursos"`
	Matriculas  []models.Enrollment `json:"matriculas"`
	Roles       []models.Role       `json:"roles"`
	Grades      []models.Grade      `json:"calificaciones"`
	Attendance  []models.Attendance `json:"asistencias"`
}

// RenderBundleJSON dumps every entity collection into one object keyed by
// collection name, as a single download.
func (s *ExportService) RenderBundleJSON(ctx context.Context) ([]byte, string, error) {
	bundle := jsonBundle{
		Estudiantes: s.students.Load(ctx),
		Docentes:    s.teachers.Load(ctx),
		Cursos:      s.courses.Load(ctx),
		Matriculas:  s.enrollments.Load(ctx),
		Roles:       s.roles.Load(ctx),
		Grades:      s.grades.Load(ctx),
		Attendance:  s.attendance.Load(ctx),
	}
	payload, err := s.json.Render(bundle)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render bundle")
	}
	return payload, "datos_completos.json", nil
}

// ScheduleBundleCSV queues one CSV render per bundled collection and
// returns the signed download descriptors up front. Files become available
// as the queue works through them, one every spacing interval.
func (s *ExportService) ScheduleBundleCSV(ctx context.Context) ([]ExportFile, error) {
	if s.queue == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "export queue not running")
	}

	timestamp := time.Now().UTC().Format("20060102_150405")
	files := make([]ExportFile, 0, len(csvBundleCollections))
	for _, collection := range csvBundleCollections {
		filename := fmt.Sprintf("%s_%s.csv", collection, timestamp)
		exportID := uuid.NewString()

		token, expiresAt, err := s.signer.Generate(exportID, filename)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download url")
		}

		if err := s.queue.Enqueue(jobs.Job{
			ID:      exportID,
			Type:    jobTypeRenderCSV,
			Payload: renderJob{Collection: collection, Filename: filename},
		}); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue export")
		}

		files = append(files, ExportFile{
			Collection: collection,
			Filename:   filename,
			Token:      token,
			URL:        s.downloadURL(token),
			ExpiresAt:  expiresAt,
		})
	}
	return files, nil
}

type renderJob struct {
	Collection string
	Filename   string
}

// HandleJob renders and stores one queued CSV file.
func (s *ExportService) HandleJob(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(renderJob)
	if !ok {
		return fmt.Errorf("unexpected payload for job %s", job.ID)
	}

	dataset, err := s.dataset(ctx, payload.Collection)
	if err != nil {
		return err
	}
	rendered, err := s.csv.Render(dataset)
	if err != nil {
		return err
	}
	if _, err := s.storage.Save(payload.Filename, rendered); err != nil {
		return err
	}
	s.logger.Info("export file written",
		zap.String("collection", payload.Collection), zap.String("filename", payload.Filename))
	return nil
}

// OpenDownload validates a signed token and opens the referenced file.
func (s *ExportService) OpenDownload(token string) (*os.File, string, error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid download token")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "export file not ready")
	}
	return file, relPath, nil
}

func (s *ExportService) downloadURL(token string) string {
	prefix := strings.TrimRight(s.apiPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}
	return fmt.Sprintf("%s/reportes/descargas/%s", prefix, token)
}

func (s *ExportService) dataset(ctx context.Context, collection string) (export.Dataset, error) {
	switch collection {
	case models.CollectionStudents:
		return studentDataset(s.students.Load(ctx)), nil
	case models.CollectionTeachers:
		return teacherDataset(s.teachers.Load(ctx)), nil
	case models.CollectionCourses:
		return courseDataset(s.courses.Load(ctx)), nil
	case models.CollectionEnrollments:
		return enrollmentDataset(s.enrollments.Load(ctx)), nil
	case models.CollectionRoles:
		return roleDataset(s.roles.Load(ctx)), nil
	case models.CollectionGrades:
		return gradeDataset(s.grades.Load(ctx)), nil
	case models.CollectionAttendance:
		return attendanceDataset(s.attendance.Load(ctx)), nil
	}
	return export.Dataset{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("colección desconocida: %s", collection))
}

func (s *ExportService) records(ctx context.Context, collection string) (interface{}, error) {
	switch collection {
	case models.CollectionStudents:
		return s.students.Load(ctx), nil
	case models.CollectionTeachers:
		return s.teachers.Load(ctx), nil
	case models.CollectionCourses:
		return s.courses.Load(ctx), nil
	case models.CollectionEnrollments:
		return s.enrollments.Load(ctx), nil
	case models.CollectionRoles:
		return s.roles.Load(ctx), nil
	case models.CollectionGrades:
		return s.grades.Load(ctx), nil
	case models.CollectionAttendance:
		return s.attendance.Load(ctx), nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("colección desconocida: %s", collection))
}
