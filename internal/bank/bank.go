package bank

import (
	"errors"
	"fmt"

	"persona-onboarding/internal/domain"
)

// Bank expone el catálogo fijo de preguntas en orden. Solo lectura; se
// construye una vez al arrancar el proceso.
type Bank struct {
	questions []domain.Question
}

var ErrOutOfRange = errors.New("question position out of range")

// FullSize es el tamaño del banco de producción.
const FullSize = 50

// New devuelve el banco completo de 50 preguntas.
func New() *Bank {
	return &Bank{questions: catalog}
}

// NewWithCount devuelve un banco sobre el prefijo de `count` preguntas
// del catálogo. count fuera de [1, 50] cae al banco completo.
func NewWithCount(count int) *Bank {
	if count < 1 || count > len(catalog) {
		return New()
	}
	return &Bank{questions: catalog[:count]}
}

// Count devuelve la cantidad de preguntas del banco.
func (b *Bank) Count() int {
	return len(b.questions)
}

// Get devuelve la pregunta en la posición 1..Count().
func (b *Bank) Get(position int) (domain.Question, error) {
	if position < 1 || position > len(b.questions) {
		return domain.Question{}, fmt.Errorf("%w: %d", ErrOutOfRange, position)
	}
	return b.questions[position-1], nil
}
