package domain

import "time"

// Phase es la fase lineal de una sesión de diagnóstico.
type Phase string

const (
	PhaseCollectingProfile Phase = "collecting_profile"
	PhaseTesting           Phase = "testing"
	PhaseFinalizing        Phase = "finalizing"
	PhaseComplete          Phase = "complete"
)

// Session es el estado completo de una sesión: fase, posición actual,
// tope dinámico de preguntas y respuestas acumuladas. Lo muta
// únicamente el controlador de la sesión; nunca se comparte entre
// respondentes.
type Session struct {
	ID              string      `json:"id"`
	Phase           Phase       `json:"phase"`
	Profile         Profile     `json:"profile"`
	CurrentPosition int         `json:"current_position"`
	MaxPosition     int         `json:"max_position"`
	Answers         map[int]int `json:"answers"`
	CreatedAt       time.Time   `json:"created_at"`
}

// NewSession crea una sesión vacía en fase de captura de perfil.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Phase:     PhaseCollectingProfile,
		Answers:   make(map[int]int),
		CreatedAt: now,
	}
}
