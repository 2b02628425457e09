package models

// Score bounds for grade entries.
const (
	GradeMin = 0
	GradeMax = 20
)

// GradeTerms enumerates the valid term labels.
var GradeTerms = []string{
	"1er Trimestre",
	"2do Trimestre",
	"3er Trimestre",
	"4to Trimestre",
}

// GradeTermValid reports whether the label is one of the four terms.
func GradeTermValid(term string) bool {
	for _, t := range GradeTerms {
		if t == term {
			return true
		}
	}
	return false
}

// Grade is one score entry for a student in a course.
type Grade struct {
	ID         int64   `json:"id"`
	Estudiante string  `json:"estudiante"`
	Curso      string  `json:"curso"`
	Trimestre  string  `json:"trimestre"`
	Nota       float64 `json:"nota"`
	Fecha      string  `json:"fecha"`
}
