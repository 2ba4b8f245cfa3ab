package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"persona-onboarding/internal/bank"
	"persona-onboarding/internal/domain"
	"persona-onboarding/internal/fortune"
	"persona-onboarding/internal/sink"
)

// Parámetros del corte adaptativo. Valores heredados tal cual del
// diseño original; no hay derivación estadística documentada detrás.
const (
	CheckpointPosition = 30
	VarianceThreshold  = 0.8
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrWrongPhase      = errors.New("operation not allowed in current phase")
)

// ValidationError identifica el campo de perfil rechazado y el formato
// esperado. Recuperable: la sesión sigue en collecting_profile.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SurveyService es la máquina de estados del diagnóstico: captura de
// perfil, entrega adaptativa de preguntas y cierre hacia el sink. Las
// transiciones operan sobre el valor de sesión del store, nunca sobre
// estado global.
type SurveyService struct {
	logger *zap.Logger
	bank   *bank.Bank
	store  SessionStore
	sink   sink.RowSink
	now    func() time.Time
}

func NewSurveyService(logger *zap.Logger, b *bank.Bank, store SessionStore, rowSink sink.RowSink) *SurveyService {
	return &SurveyService{
		logger: logger,
		bank:   b,
		store:  store,
		sink:   rowSink,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateSession abre una sesión nueva en fase de captura de perfil.
func (s *SurveyService) CreateSession() (*domain.Session, error) {
	session := domain.NewSession(uuid.NewString(), s.now())
	if err := s.store.Put(session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

// GetSession devuelve la sesión viva con ese id.
func (s *SurveyService) GetSession(id string) (*domain.Session, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// ProfileInput son los campos crudos del formulario de perfil.
type ProfileInput struct {
	UserID    string
	DOB       string // 8 dígitos YYYYMMDD
	BirthTime string // texto libre opcional
	Gender    string
}

// SubmitProfile valida el perfil y pasa la sesión a testing. En caso de
// error de validación la fase no cambia y el error identifica el campo.
func (s *SurveyService) SubmitProfile(sessionID string, input ProfileInput) (*domain.Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase != domain.PhaseCollectingProfile {
		return nil, ErrWrongPhase
	}

	profile, vErr := s.validateProfile(input)
	if vErr != nil {
		return nil, vErr
	}

	session.Profile = profile
	session.Phase = domain.PhaseTesting
	session.CurrentPosition = 1
	session.MaxPosition = s.initialMax()

	if s.logger != nil {
		s.logger.Info("profile accepted, test started",
			zap.String("session_id", session.ID),
			zap.Int("max_position", session.MaxPosition),
		)
	}
	return session, nil
}

func (s *SurveyService) validateProfile(input ProfileInput) (domain.Profile, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return domain.Profile{}, &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}

	dobStr := strings.TrimSpace(input.DOB)
	if len(dobStr) != 8 || !isDigits(dobStr) {
		return domain.Profile{}, &ValidationError{Field: "dob", Reason: "must be 8 numeric digits, e.g. 19961229"}
	}
	dob, err := time.Parse("20060102", dobStr)
	if err != nil {
		return domain.Profile{}, &ValidationError{Field: "dob", Reason: "is not a real calendar date"}
	}
	currentYear := s.now().Year()
	if dob.Year() < 1900 || dob.Year() > currentYear {
		return domain.Profile{}, &ValidationError{
			Field:  "dob",
			Reason: fmt.Sprintf("year must be between 1900 and %d", currentYear),
		}
	}

	gender := strings.TrimSpace(input.Gender)
	if !isKnownGender(gender) {
		return domain.Profile{}, &ValidationError{Field: "gender", Reason: "must be one of the fixed labels"}
	}

	// El tiempo de nacimiento se guarda tal cual (recortado); la
	// normalización a mediodía ocurre recién al derivar el calendario.
	return domain.Profile{
		UserID:    userID,
		DOB:       dob,
		BirthTime: strings.TrimSpace(input.BirthTime),
		Gender:    gender,
	}, nil
}

// CurrentQuestion devuelve la pregunta pendiente de la sesión.
func (s *SurveyService) CurrentQuestion(sessionID string) (domain.Question, *domain.Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return domain.Question{}, nil, err
	}
	if session.Phase != domain.PhaseTesting {
		return domain.Question{}, nil, ErrWrongPhase
	}
	question, err := s.bank.Get(session.CurrentPosition)
	if err != nil {
		return domain.Question{}, nil, err
	}
	return question, session, nil
}

// AnswerResult reporta el efecto de un Answer: Ignored marca un envío
// duplicado/desfasado que no mutó nada.
type AnswerResult struct {
	Session *domain.Session
	Ignored bool
}

// Answer registra un rating para la posición actual. Un position
// distinto del actual se descarta en silencio (tolerancia a doble tap
// y re-render). En el checkpoint decide extender a 50 o cerrar según la
// varianza muestral de lo respondido.
func (s *SurveyService) Answer(sessionID string, position, rating int) (AnswerResult, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return AnswerResult{}, err
	}
	if session.Phase != domain.PhaseTesting {
		return AnswerResult{}, ErrWrongPhase
	}
	if rating < domain.RatingMin || rating > domain.RatingMax {
		return AnswerResult{}, &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	if position != session.CurrentPosition {
		return AnswerResult{Session: session, Ignored: true}, nil
	}

	session.Answers[position] = rating

	if session.CurrentPosition == CheckpointPosition {
		variance := sampleVariance(session.Answers)
		if variance < VarianceThreshold {
			session.MaxPosition = s.extendedMax()
		} else {
			s.finishTest(session)
			return AnswerResult{Session: session}, nil
		}
		if s.logger != nil {
			s.logger.Info("checkpoint evaluated",
				zap.String("session_id", session.ID),
				zap.Float64("variance", variance),
				zap.Int("max_position", session.MaxPosition),
			)
		}
	}

	if session.CurrentPosition >= session.MaxPosition {
		s.finishTest(session)
		return AnswerResult{Session: session}, nil
	}

	session.CurrentPosition++
	return AnswerResult{Session: session}, nil
}

// GoBack retrocede una posición sin borrar la respuesta ya guardada; en
// la primera pregunta es un no-op.
func (s *SurveyService) GoBack(sessionID string) (*domain.Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase != domain.PhaseTesting {
		return nil, ErrWrongPhase
	}
	if session.CurrentPosition > 1 {
		session.CurrentPosition--
	}
	return session, nil
}

func (s *SurveyService) finishTest(session *domain.Session) {
	session.Phase = domain.PhaseFinalizing
	if s.logger != nil {
		s.logger.Info("test finished",
			zap.String("session_id", session.ID),
			zap.Int("answers", len(session.Answers)),
		)
	}
}

// FinalizeResult es la salida consolidada entregada al sink.
type FinalizeResult struct {
	Scores     domain.Scores
	Attributes fortune.Attributes
	Row        []string
}

// Finalize calcula scores y atributos de calendario, arma la fila y la
// entrega al sink. Si el sink falla la sesión queda en finalizing y el
// mismo Finalize puede reintentarse; las filas duplicadas que produce
// un reintento tras un éxito parcial son una limitación aceptada.
func (s *SurveyService) Finalize(ctx context.Context, sessionID string) (FinalizeResult, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return FinalizeResult{}, err
	}
	if session.Phase != domain.PhaseFinalizing {
		return FinalizeResult{}, ErrWrongPhase
	}

	scores, err := ComputeScores(session.Answers, s.bank)
	if err != nil {
		return FinalizeResult{}, err
	}

	dob := session.Profile.DOB
	attrs, err := fortune.Derive(dob.Year(), int(dob.Month()), dob.Day(), session.Profile.BirthTime)
	if err != nil {
		// Fallo de tabla: bug de derivación, fatal para la sesión.
		if s.logger != nil {
			s.logger.Error("calendar derivation failed", zap.String("session_id", session.ID), zap.Error(err))
		}
		return FinalizeResult{}, err
	}

	row := BuildRow(session.Profile, attrs, session.Answers, scores, s.now())

	if err := s.sink.Append(ctx, row); err != nil {
		if s.logger != nil {
			s.logger.Warn("result sink append failed", zap.String("session_id", session.ID), zap.Error(err))
		}
		return FinalizeResult{}, fmt.Errorf("append result row: %w", err)
	}

	session.Phase = domain.PhaseComplete
	if s.logger != nil {
		s.logger.Info("session complete", zap.String("session_id", session.ID))
	}
	return FinalizeResult{Scores: scores, Attributes: attrs, Row: row}, nil
}

func (s *SurveyService) initialMax() int {
	if s.bank.Count() < CheckpointPosition {
		return s.bank.Count()
	}
	return CheckpointPosition
}

func (s *SurveyService) extendedMax() int {
	return s.bank.Count()
}

// sampleVariance es la varianza muestral (n-1) de los ratings; con un
// único valor vale 0.
func sampleVariance(answers map[int]int) float64 {
	n := len(answers)
	if n < 2 {
		return 0
	}
	var sum float64
	for _, v := range answers {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var ss float64
	for _, v := range answers {
		d := float64(v) - mean
		ss += d * d
	}
	return ss / float64(n-1)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isKnownGender(gender string) bool {
	for _, label := range domain.GenderLabels {
		if gender == label {
			return true
		}
	}
	return false
}
