package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8080"`
	JWTSecret         string `env:"JWT_SECRET,required"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" envDefault:"120"`
	QuestionCount     int    `env:"QUESTION_COUNT" envDefault:"50"`
	ReturnURL         string `env:"RETURN_URL" envDefault:"https://lin.ee/FrawIyY"`
	SheetsBaseURL     string `env:"SHEETS_BASE_URL" envDefault:"https://sheets.googleapis.com"`
	SheetsSpreadsheet string `env:"SHEETS_SPREADSHEET_ID"`
	SheetsRange       string `env:"SHEETS_RANGE" envDefault:"Sheet1"`
	SheetsAccessToken string `env:"SHEETS_ACCESS_TOKEN"`
	DatabaseURL       string `env:"DATABASE_URL"`
	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
