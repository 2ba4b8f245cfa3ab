package sink

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestSheetsSinkAppend(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody appendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	s := NewSheetsSink(server.URL, "sheet-123", "Sheet1", "token-abc", zap.NewNop())
	row := []string{"U1", "", "", "1996/12/29"}

	if err := s.Append(context.Background(), row); err != nil {
		t.Fatalf("append: %v", err)
	}
	if !strings.Contains(gotPath, "/v4/spreadsheets/sheet-123/values/") {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer token-abc" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if len(gotBody.Values) != 1 || len(gotBody.Values[0]) != len(row) {
		t.Fatalf("unexpected body values: %v", gotBody.Values)
	}
	if gotBody.Values[0][3] != "1996/12/29" {
		t.Fatalf("unexpected row content: %v", gotBody.Values[0])
	}
}

func TestSheetsSinkHTTPErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"permission denied"}}`))
	}))
	defer server.Close()

	s := NewSheetsSink(server.URL, "sheet-123", "Sheet1", "bad-token", zap.NewNop())
	err := s.Append(context.Background(), []string{"U1"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestSheetsSinkNetworkErrorIsUnavailable(t *testing.T) {
	// Puerto cerrado: el dial falla.
	s := NewSheetsSink("http://127.0.0.1:1", "sheet-123", "Sheet1", "token", zap.NewNop())
	err := s.Append(context.Background(), []string{"U1"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestDisabledSink(t *testing.T) {
	s := NewDisabledSink("result sink not configured")
	err := s.Append(context.Background(), []string{"U1"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestMockSinkCopiesRows(t *testing.T) {
	m := &MockSink{}
	row := []string{"a", "b"}
	if err := m.Append(context.Background(), row); err != nil {
		t.Fatalf("append: %v", err)
	}
	row[0] = "mutated"
	if m.Rows[0][0] != "a" {
		t.Fatalf("expected defensive copy, got %v", m.Rows[0])
	}
}
