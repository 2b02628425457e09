package models

// Teacher represents a teaching staff member.
type Teacher struct {
	ID           int64  `json:"id"`
	Nombres      string `json:"nombres"`
	Apellidos    string `json:"apellidos"`
	DNI          string `json:"dni"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	Especialidad string `json:"especialidad"`
	Usuario      string `json:"usuario"`
	Contrasena   string `json:"contraseña"`
}
