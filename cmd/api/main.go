package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"persona-onboarding/internal/bank"
	"persona-onboarding/internal/config"
	"persona-onboarding/internal/db"
	apihttp "persona-onboarding/internal/http"
	"persona-onboarding/internal/service"
	"persona-onboarding/internal/sink"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	questionBank := bank.NewWithCount(cfg.QuestionCount)
	sessionStore := service.NewMemorySessionStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)

	rowSink := sink.RowSink(sink.NewDisabledSink("result sink not configured"))
	switch {
	case cfg.DatabaseURL != "":
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		rowSink = sink.NewPgRowSink(pool)
		logger.Info("using postgres result sink")
	case cfg.SheetsSpreadsheet != "":
		rowSink = sink.NewSheetsSink(cfg.SheetsBaseURL, cfg.SheetsSpreadsheet, cfg.SheetsRange, cfg.SheetsAccessToken, logger)
		logger.Info("using google sheets result sink", zap.String("spreadsheet", cfg.SheetsSpreadsheet))
	default:
		logger.Warn("no result sink configured, finalize will always fail")
	}

	var startLimiter service.StartRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			startLimiter = service.NewRedisStartRateLimiter(redisClient, time.Minute, 10)
		}
		cancel()
	}

	surveySvc := service.NewSurveyService(logger, questionBank, sessionStore, rowSink)
	tokenSvc := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.SessionTTLMinutes)*time.Minute)

	surveyHandler := apihttp.NewSurveyHandler(logger, surveySvc, tokenSvc, startLimiter, cfg.ReturnURL)
	router := apihttp.NewRouter(logger, surveyHandler, tokenSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
