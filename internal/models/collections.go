package models

// Collection keys as persisted by the storage layer. The names predate this
// service and must not change: existing datasets are keyed by them.
const (
	CollectionStudents    = "estudiantes"
	CollectionTeachers    = "docentes"
	CollectionCourses     = "cursos"
	CollectionEnrollments = "matriculas"
	CollectionRoles       = "roles"
	CollectionAdmins      = "administradores"
	CollectionGrades      = "calificaciones"
	CollectionAttendance  = "asistencias"
)

// EntityCollections lists every collection reachable through the CRUD
// surface, in the order the bundled JSON export emits them.
var EntityCollections = []string{
	CollectionStudents,
	CollectionTeachers,
	CollectionCourses,
	CollectionEnrollments,
	CollectionRoles,
	CollectionGrades,
	CollectionAttendance,
}
