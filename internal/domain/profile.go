package domain

import "time"

// GenderLabels es el conjunto cerrado de etiquetas aceptadas en el
// formulario de perfil.
var GenderLabels = []string{"男性", "女性", "その他", "回答しない"}

// Profile son los datos básicos capturados antes del test. Inmutable
// una vez validado.
type Profile struct {
	UserID    string    `json:"user_id"`
	DOB       time.Time `json:"dob"`
	BirthTime string    `json:"birth_time"` // texto libre recortado, puede ser ""
	Gender    string    `json:"gender"`
}

// DOBString devuelve la fecha de nacimiento como YYYY/MM/DD, el formato
// que espera la fila de resultados.
func (p Profile) DOBString() string {
	return p.DOB.Format("2006/01/02")
}
