package service

import (
	"strconv"

	"github.com/jvaler-dev/sga-console-api/internal/models"
	"github.com/jvaler-dev/sga-console-api/pkg/export"
)

// Column mapping is explicit per collection: an ordered list of
// human-readable headers, each bound to a field accessor. The console used
// to derive field names from headers by lowercasing and stripping spaces,
// which breaks on accented headers like "Código Matrícula"; the explicit
// lists below keep the exact same headers without that fragility.

func studentDataset(records []models.Student) export.Dataset {
	headers := []string{"Nombres", "Apellidos", "DNI", "Email", "Grado", "Sección", "Usuario"}
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]string{
			"Nombres":   r.Nombres,
			"Apellidos": r.Apellidos,
			"DNI":       r.DNI,
			"Email":     r.Email,
			"Grado":     r.Grado,
			"Sección":   r.Seccion,
			"Usuario":   r.Usuario,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func teacherDataset(records []models.Teacher) export.Dataset {
	headers := []string{"Nombres", "Apellidos", "DNI", "Email", "Especialidad", "Usuario"}
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]string{
			"Nombres":      r.Nombres,
			"Apellidos":    r.Apellidos,
			"DNI":          r.DNI,
			"Email":        r.Email,
			"Especialidad": r.Especialidad,
			"Usuario":      r.Usuario,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func courseDataset(records []models.Course) export.Dataset {
	headers := []string{"Código", "Nombre", "Grado", "Horas", "Docente"}
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]string{
			"Código":  r.Codigo,
			"Nombre":  r.Nombre,
			"Grado":   r.Grado,
			"Horas":   strconv.Itoa(r.Horas),
			"Docente": r.Docente,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func enrollmentDataset(records []models.Enrollment) export.Dataset {
	headers := []string{"Código Matrícula", "Estudiante", "DNI Estudiante", "Grado", "Sección", "Año Escolar", "Estado"}
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]string{
			"Código Matrícula": r.CodigoMatricula,
			"Estudiante":       r.Estudiante,
			"DNI Estudiante":   r.DNIEstudiante,
			"Grado":            r.Grado,
			"Sección":          r.Seccion,
			"Año Escolar":      r.AnioEscolar,
			"Estado":           string(r.Estado),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func roleDataset(records []models.Role) export.Dataset {
	headers := []string{"Nombre", "Descripción"}
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]string{
			"Nombre":      r.Nombre,
			"Descripción": r.Descripcion,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func gradeDataset(records []models.Grade) export.Dataset {
	headers := []string{"Estudiante", "Curso", "Trimestre", "Nota", "Fecha"}
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]string{
			"Estudiante": r.Estudiante,
			"Curso":      r.Curso,
			"Trimestre":  r.Trimestre,
			"Nota":       formatScore(r.Nota),
			"Fecha":      r.Fecha,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func attendanceDataset(records []models.Attendance) export.Dataset {
	headers := []string{"Estudiante", "Curso", "Fecha", "Estado"}
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]string{
			"Estudiante": r.Estudiante,
			"Curso":      r.Curso,
			"Fecha":      r.Fecha,
			"Estado":     string(r.Estado),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func formatScore(nota float64) string {
	return strconv.FormatFloat(nota, 'f', -1, 64)
}
