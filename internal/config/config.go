package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port int

	CORSAllowedOrigins []string
	BodyLimitBytes     int64
	LoginRateLimit     int
	LoginRateWindow    time.Duration

	// Email notifications; when ResendAPIKey is empty the portal falls
	// back to a log-only sender.
	ResendAPIKey string
	NotifyFrom   string
	NotifyTo     string

	TracingEnabled bool
	OTLPEndpoint   string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Env:                getEnv("APP_ENV", "dev"),
		Port:               getEnvInt("PORT", 8080),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		BodyLimitBytes:     int64(getEnvInt("BODY_LIMIT_BYTES", 1<<20)),
		LoginRateLimit:     getEnvInt("LOGIN_RATE_LIMIT", 20),
		LoginRateWindow:    time.Duration(getEnvInt("LOGIN_RATE_WINDOW_SECONDS", 60)) * time.Second,
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		NotifyFrom:         getEnv("NOTIFY_FROM", "portal@view.edu.in"),
		NotifyTo:           getEnv("NOTIFY_TO", "admin@view.edu.in"),
		TracingEnabled:     getEnv("OTEL_ENABLED", "") == "1",
		OTLPEndpoint:       getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4317"),
	}
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			fmt.Println(err)
			return fallback
		}

		return num
	}
	return fallback
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
