package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	SessionTTL  time.Duration
	DemoLatency time.Duration
	CORSOrigins []string
}

func mustConfig() Config {
	// Optional .env for local development; deployments set the env directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getenv("PORT", "8080"),
		JWTSecret:   getenv("JWT_SECRET", "change_me"),
		SessionTTL:  time.Duration(getenvInt("DEMO_SESSION_TTL_MIN", 30)) * time.Minute,
		DemoLatency: time.Duration(getenvInt("DEMO_LATENCY_MS", 0)) * time.Millisecond,
		CORSOrigins: strings.Split(getenv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000"), ","),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
