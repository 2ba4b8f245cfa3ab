package sink

import (
	"context"
	"errors"
	"fmt"
)

// RowSink persiste una fila finalizada de resultados. Append-only: el
// core nunca lee de vuelta lo escrito, y un reintento tras fallo puede
// duplicar filas (idempotencia a cargo del caller).
type RowSink interface {
	Append(ctx context.Context, row []string) error
}

// ErrUnavailable agrupa cualquier fallo del sink (red, auth, backend).
// Para el usuario es un fallo genérico y reintentable; nunca tumba el
// proceso.
var ErrUnavailable = errors.New("result sink unavailable")

type disabledSink struct {
	reason string
}

// NewDisabledSink es el sink usado cuando no hay backend configurado:
// todo Append falla con ErrUnavailable.
func NewDisabledSink(reason string) RowSink {
	return &disabledSink{reason: reason}
}

func (s *disabledSink) Append(_ context.Context, _ []string) error {
	if s.reason == "" {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %s", ErrUnavailable, s.reason)
}
