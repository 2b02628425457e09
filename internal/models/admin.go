package models

// Admin is an administrator account created through the account-creation
// flow. It lives in its own collection, separate from the demo credentials.
// Usuario, DNI and Email are each unique within the collection.
type Admin struct {
	ID         int64  `json:"id"`
	Nombres    string `json:"nombres"`
	Apellidos  string `json:"apellidos"`
	DNI        string `json:"dni"`
	Email      string `json:"email"`
	Telefono   string `json:"telefono"`
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contraseña"`
}
