package models

// Course represents a subject taught at a given grade. Docente carries the
// assigned teacher's display name; there is no referential link to the
// teachers collection.
type Course struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Grado       string `json:"grado"`
	Horas       int    `json:"horas"`
	Docente     string `json:"docente"`
}
