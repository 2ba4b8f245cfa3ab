package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-onboarding/internal/bank"
	"persona-onboarding/internal/service"
	"persona-onboarding/internal/sink"
)

type surveyTestEnv struct {
	router *gin.Engine
	mock   *sink.MockSink
}

func newSurveyTestEnv(t *testing.T) *surveyTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	mock := &sink.MockSink{}
	surveySvc := service.NewSurveyService(logger, bank.New(), service.NewMemorySessionStore(time.Hour), mock)
	tokenSvc := service.NewTokenService("test-secret", time.Hour)
	handler := NewSurveyHandler(logger, surveySvc, tokenSvc, nil, "https://example.test/return")

	return &surveyTestEnv{
		router: NewRouter(logger, handler, tokenSvc),
		mock:   mock,
	}
}

func (e *surveyTestEnv) do(t *testing.T, method, path, token string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func (e *surveyTestEnv) startSession(t *testing.T) string {
	t.Helper()
	w, resp := e.do(t, http.MethodPost, "/survey/sessions", "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: status %d body %s", w.Code, w.Body.String())
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatalf("expected session token, got %v", resp)
	}
	return token
}

func TestSurveyRequiresToken(t *testing.T) {
	env := newSurveyTestEnv(t)

	w, _ := env.do(t, http.MethodGet, "/survey/question", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w, _ = env.do(t, http.MethodGet, "/survey/question", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with invalid token, got %d", w.Code)
	}
}

func TestSurveyProfileValidationResponse(t *testing.T) {
	env := newSurveyTestEnv(t)
	token := env.startSession(t)

	w, resp := env.do(t, http.MethodPost, "/survey/profile", token, map[string]string{
		"user_id": "U1",
		"dob":     "1996",
		"gender":  "男性",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body %s", w.Code, w.Body.String())
	}
	if resp["field"] != "dob" {
		t.Fatalf("expected offending field dob, got %v", resp)
	}
}

func TestSurveyFullFlowHighVariance(t *testing.T) {
	env := newSurveyTestEnv(t)
	token := env.startSession(t)

	w, resp := env.do(t, http.MethodPost, "/survey/profile", token, map[string]string{
		"user_id":    "U12345",
		"dob":        "19961229",
		"birth_time": "23:16",
		"gender":     "女性",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit profile: status %d body %s", w.Code, w.Body.String())
	}
	if resp["phase"] != "testing" {
		t.Fatalf("expected testing phase, got %v", resp)
	}

	// Primera pregunta del banco.
	w, resp = env.do(t, http.MethodGet, "/survey/question", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("current question: status %d", w.Code)
	}
	if resp["position"] != float64(1) {
		t.Fatalf("expected position 1, got %v", resp["position"])
	}
	if prompt, _ := resp["prompt"].(string); prompt == "" {
		t.Fatalf("expected a prompt, got %v", resp)
	}
	if labels, _ := resp["labels"].([]any); len(labels) != 5 {
		t.Fatalf("expected 5 answer labels, got %v", resp["labels"])
	}

	// Respuestas alternadas 1/5: alta varianza, corta en la 30.
	for pos := 1; pos <= 30; pos++ {
		rating := 1
		if pos%2 == 0 {
			rating = 5
		}
		w, resp = env.do(t, http.MethodPost, "/survey/answer", token, map[string]int{
			"position": pos,
			"rating":   rating,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("answer %d: status %d body %s", pos, w.Code, w.Body.String())
		}
	}
	if resp["phase"] != "finalizing" {
		t.Fatalf("expected finalizing after checkpoint, got %v", resp)
	}

	// Reenvío desfasado: ignorado sin error.
	w, resp = env.do(t, http.MethodPost, "/survey/answer", token, map[string]int{
		"position": 3,
		"rating":   2,
	})
	if w.Code != http.StatusConflict {
		// La sesión ya no está en testing: 409.
		t.Fatalf("expected 409 answering after finalizing, got %d", w.Code)
	}

	w, resp = env.do(t, http.MethodPost, "/survey/finalize", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("finalize: status %d body %s", w.Code, w.Body.String())
	}
	if resp["return_url"] != "https://example.test/return" {
		t.Fatalf("expected return url, got %v", resp)
	}
	if len(env.mock.Rows) != 1 {
		t.Fatalf("expected 1 sink row, got %d", len(env.mock.Rows))
	}
	if got := len(env.mock.Rows[0]); got != service.RowFields {
		t.Fatalf("expected %d row fields, got %d", service.RowFields, got)
	}
}

func TestSurveyStaleAnswerIgnored(t *testing.T) {
	env := newSurveyTestEnv(t)
	token := env.startSession(t)

	w, _ := env.do(t, http.MethodPost, "/survey/profile", token, map[string]string{
		"user_id": "U12345",
		"dob":     "19961229",
		"gender":  "男性",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit profile: status %d", w.Code)
	}

	w, _ = env.do(t, http.MethodPost, "/survey/answer", token, map[string]int{"position": 1, "rating": 4})
	if w.Code != http.StatusOK {
		t.Fatalf("answer: status %d", w.Code)
	}

	// Doble tap sobre la pregunta 1 ya respondida.
	w, resp := env.do(t, http.MethodPost, "/survey/answer", token, map[string]int{"position": 1, "rating": 2})
	if w.Code != http.StatusOK {
		t.Fatalf("stale answer: status %d", w.Code)
	}
	if resp["ignored"] != true {
		t.Fatalf("expected ignored=true, got %v", resp)
	}
	if resp["position"] != float64(2) {
		t.Fatalf("expected to stay at position 2, got %v", resp["position"])
	}
}

func TestSurveyGoBack(t *testing.T) {
	env := newSurveyTestEnv(t)
	token := env.startSession(t)

	w, _ := env.do(t, http.MethodPost, "/survey/profile", token, map[string]string{
		"user_id": "U12345",
		"dob":     "19961229",
		"gender":  "その他",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit profile: status %d", w.Code)
	}

	// En la primera pregunta, back es un no-op.
	w, resp := env.do(t, http.MethodPost, "/survey/back", token, nil)
	if w.Code != http.StatusOK || resp["position"] != float64(1) {
		t.Fatalf("expected no-op back at 1, got %d %v", w.Code, resp)
	}

	env.do(t, http.MethodPost, "/survey/answer", token, map[string]int{"position": 1, "rating": 3})
	env.do(t, http.MethodPost, "/survey/answer", token, map[string]int{"position": 2, "rating": 3})

	w, resp = env.do(t, http.MethodPost, "/survey/back", token, nil)
	if w.Code != http.StatusOK || resp["position"] != float64(2) {
		t.Fatalf("expected back to position 2, got %d %v", w.Code, resp)
	}
}

func TestSurveyFinalizeSinkFailure(t *testing.T) {
	env := newSurveyTestEnv(t)
	env.mock.Err = sink.ErrUnavailable
	token := env.startSession(t)

	w, _ := env.do(t, http.MethodPost, "/survey/profile", token, map[string]string{
		"user_id": "U12345",
		"dob":     "19961229",
		"gender":  "回答しない",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit profile: status %d", w.Code)
	}
	for pos := 1; pos <= 30; pos++ {
		rating := 1
		if pos%2 == 0 {
			rating = 5
		}
		env.do(t, http.MethodPost, "/survey/answer", token, map[string]int{"position": pos, "rating": rating})
	}

	w, _ = env.do(t, http.MethodPost, "/survey/finalize", token, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 on sink failure, got %d", w.Code)
	}

	// El mismo paso se reintenta cuando el sink vuelve.
	env.mock.Err = nil
	w, _ = env.do(t, http.MethodPost, "/survey/finalize", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected retry to succeed, got %d body %s", w.Code, w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	env := newSurveyTestEnv(t)
	w, resp := env.do(t, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK || resp["status"] != "ok" {
		t.Fatalf("unexpected healthz response: %d %v", w.Code, resp)
	}
}
