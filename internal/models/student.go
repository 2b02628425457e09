package models

// Student represents a learner registered in the institution. JSON tags
// mirror the persisted record shape, guardian fields included.
type Student struct {
	ID            int64  `json:"id"`
	Nombres       string `json:"nombres"`
	Apellidos     string `json:"apellidos"`
	DNI           string `json:"dni"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
	Direccion     string `json:"direccion"`
	Grado         string `json:"grado"`
	Seccion       string `json:"seccion"`
	NombrePadre   string `json:"nombrePadre"`
	TelefonoPadre string `json:"telefonoPadre"`
	Usuario       string `json:"usuario"`
	Contrasena    string `json:"contraseña"`
}
