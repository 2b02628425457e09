package models

// EnrollmentStatus enumerates the valid states of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "Activa"
	EnrollmentInactive  EnrollmentStatus = "Inactiva"
	EnrollmentWithdrawn EnrollmentStatus = "Retirado"
)

// Valid reports whether the status is one of the enumerated values.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentActive, EnrollmentInactive, EnrollmentWithdrawn:
		return true
	}
	return false
}

// Enrollment ties a student to a school year. Student identity is carried by
// name and DNI, not by reference.
type Enrollment struct {
	ID                int64            `json:"id"`
	CodigoMatricula   string           `json:"codigoMatricula"`
	Estudiante        string           `json:"estudiante"`
	DNIEstudiante     string           `json:"dniEstudiante"`
	Grado             string           `json:"grado"`
	Seccion           string           `json:"seccion"`
	FechaMatricula    string           `json:"fechaMatricula"`
	AnioEscolar       string           `json:"anioEscolar"`
	Estado            EnrollmentStatus `json:"estado"`
	Apoderado         string           `json:"apoderado"`
	TelefonoApoderado string           `json:"telefonoApoderado"`
}
