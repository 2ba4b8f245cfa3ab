package sink

import "context"

// MockSink permite tests sin backend real; guarda las filas recibidas.
type MockSink struct {
	Rows [][]string
	Err  error
}

func (m *MockSink) Append(_ context.Context, row []string) error {
	if m.Err != nil {
		return m.Err
	}
	copied := make([]string, len(row))
	copy(copied, row)
	m.Rows = append(m.Rows, copied)
	return nil
}
