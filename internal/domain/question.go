package domain

// Traits del modelo OCEAN, en el orden fijo de salida.
const (
	TraitOpenness          = "O"
	TraitConscientiousness = "C"
	TraitExtraversion      = "E"
	TraitAgreeableness     = "A"
	TraitNeuroticism       = "N"
)

// TraitOrder fija el orden O, C, E, A, N usado en la fila de resultados.
var TraitOrder = []string{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

// Question es un item de la escala Likert del inventario Big Five.
type Question struct {
	Position  int    `json:"position"`
	Prompt    string `json:"prompt"`
	Trait     string `json:"trait"`
	IsReverse bool   `json:"is_reverse"`
}

const (
	RatingMin = 1
	RatingMax = 5
)

// AnswerLabels son las cinco opciones mostradas al usuario, indexadas
// por rating-1 (1 = 全く違う ... 5 = 強くそう思う).
var AnswerLabels = []string{
	"全く違う",
	"やや違う",
	"どちらでもない",
	"ややそう思う",
	"強くそう思う",
}

// InvertRating invierte un rating de item reverso (6 - r). Es su propia
// inversa sobre el dominio 1..5.
func InvertRating(rating int) int {
	return 6 - rating
}
