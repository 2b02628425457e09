package models

// AttendanceStatus enumerates the valid attendance marks.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Presente"
	AttendanceAbsent  AttendanceStatus = "Ausente"
	AttendanceLate    AttendanceStatus = "Tardanza"
)

// Valid reports whether the status is one of the enumerated values.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// Attendance is one mark for a student in a course on a date.
type Attendance struct {
	ID         int64            `json:"id"`
	Estudiante string           `json:"estudiante"`
	Curso      string           `json:"curso"`
	Fecha      string           `json:"fecha"`
	Estado     AttendanceStatus `json:"estado"`
}
