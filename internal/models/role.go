package models

// AvailablePermissions is the fixed set of permission labels a role may
// carry. The console renders these as checkboxes.
var AvailablePermissions = []string{
	"Gestión de Usuarios",
	"Gestión de Estudiantes",
	"Gestión de Docentes",
	"Gestión de Cursos",
	"Gestión de Matrículas",
	"Ver Reportes",
	"Exportar Datos",
	"Configuración del Sistema",
}

// PermissionAllowed reports whether the label belongs to the fixed set.
func PermissionAllowed(label string) bool {
	for _, p := range AvailablePermissions {
		if p == label {
			return true
		}
	}
	return false
}

// Role is a named set of permission labels.
type Role struct {
	ID          int64    `json:"id"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Permisos    []string `json:"permisos"`
}
