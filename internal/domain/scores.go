package domain

// Scores son los promedios por trait (1.0..5.0, un decimal) tras
// ajustar items reversos. Un trait sin respuestas queda en 3.0.
type Scores struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// Ordered devuelve los cinco valores en el orden fijo O, C, E, A, N.
func (s Scores) Ordered() []float64 {
	return []float64{
		s.Openness,
		s.Conscientiousness,
		s.Extraversion,
		s.Agreeableness,
		s.Neuroticism,
	}
}
