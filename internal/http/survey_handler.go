package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-onboarding/internal/domain"
	"persona-onboarding/internal/service"
	"persona-onboarding/internal/sink"
)

// SurveyHandler mantiene dependencias para los endpoints del
// diagnóstico.
type SurveyHandler struct {
	logger    *zap.Logger
	surveySvc *service.SurveyService
	tokenSvc  *service.TokenService
	limiter   service.StartRateLimiter
	returnURL string
}

// NewSurveyHandler crea una instancia de SurveyHandler con las
// dependencias necesarias.
func NewSurveyHandler(
	logger *zap.Logger,
	surveySvc *service.SurveyService,
	tokenSvc *service.TokenService,
	limiter service.StartRateLimiter,
	returnURL string,
) *SurveyHandler {
	return &SurveyHandler{
		logger:    logger,
		surveySvc: surveySvc,
		tokenSvc:  tokenSvc,
		limiter:   limiter,
		returnURL: returnURL,
	}
}

// CreateSession maneja POST /survey/sessions.
func (h *SurveyHandler) CreateSession(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	session, err := h.surveySvc.CreateSession()
	if err != nil {
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	token, err := h.tokenSvc.IssueToken(session.ID)
	if err != nil {
		h.logger.Error("issue session token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"token":      token,
		"phase":      session.Phase,
	})
}

// SubmitProfile maneja POST /survey/profile.
func (h *SurveyHandler) SubmitProfile(c *gin.Context) {
	claims, ok := GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	var req struct {
		UserID    string `json:"user_id"`
		DOB       string `json:"dob"`
		BirthTime string `json:"birth_time"`
		Gender    string `json:"gender"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.surveySvc.SubmitProfile(claims.SessionID, service.ProfileInput{
		UserID:    req.UserID,
		DOB:       req.DOB,
		BirthTime: req.BirthTime,
		Gender:    req.Gender,
	})
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, service.ErrWrongPhase):
			c.JSON(http.StatusConflict, gin.H{"error": "profile already submitted"})
		default:
			h.logger.Error("submit profile failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"phase":        session.Phase,
		"position":     session.CurrentPosition,
		"max_position": session.MaxPosition,
	})
}

// CurrentQuestion maneja GET /survey/question.
func (h *SurveyHandler) CurrentQuestion(c *gin.Context) {
	claims, ok := GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	question, session, err := h.surveySvc.CurrentQuestion(claims.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, service.ErrWrongPhase):
			c.JSON(http.StatusConflict, gin.H{"error": "no pending question in current phase"})
		default:
			h.logger.Error("current question failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load question"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"position":     session.CurrentPosition,
		"max_position": session.MaxPosition,
		"progress":     float64(session.CurrentPosition) / float64(session.MaxPosition),
		"prompt":       question.Prompt,
		"labels":       domain.AnswerLabels,
		"can_go_back":  session.CurrentPosition > 1,
	})
}

// Answer maneja POST /survey/answer.
func (h *SurveyHandler) Answer(c *gin.Context) {
	claims, ok := GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	var req struct {
		Position int `json:"position" binding:"required"`
		Rating   int `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid answer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.surveySvc.Answer(claims.SessionID, req.Position, req.Rating)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, service.ErrWrongPhase):
			c.JSON(http.StatusConflict, gin.H{"error": "not accepting answers in current phase"})
		default:
			h.logger.Error("answer failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record answer"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ignored":      result.Ignored,
		"phase":        result.Session.Phase,
		"position":     result.Session.CurrentPosition,
		"max_position": result.Session.MaxPosition,
	})
}

// GoBack maneja POST /survey/back.
func (h *SurveyHandler) GoBack(c *gin.Context) {
	claims, ok := GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	session, err := h.surveySvc.GoBack(claims.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, service.ErrWrongPhase):
			c.JSON(http.StatusConflict, gin.H{"error": "cannot navigate in current phase"})
		default:
			h.logger.Error("go back failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not go back"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"position":     session.CurrentPosition,
		"max_position": session.MaxPosition,
	})
}

// Finalize maneja POST /survey/finalize.
func (h *SurveyHandler) Finalize(c *gin.Context) {
	claims, ok := GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	result, err := h.surveySvc.Finalize(c.Request.Context(), claims.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, service.ErrWrongPhase):
			c.JSON(http.StatusConflict, gin.H{"error": "session is not ready to finalize"})
		case errors.Is(err, sink.ErrUnavailable):
			// Genérico y reintentable: la sesión sigue en finalizing.
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save results, please retry"})
		default:
			h.logger.Error("finalize failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not finalize session"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"phase":      domain.PhaseComplete,
		"scores":     result.Scores,
		"calendar":   result.Attributes,
		"return_url": h.returnURL,
	})
}
