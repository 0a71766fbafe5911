// Package config derives runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	CORSOrigins []string

	// RetryBaseWait is the unit delay for store read retries.
	RetryBaseWait time.Duration
}

func FromEnv() Config {
	return Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
		DBDriver:      envOr("DB_DRIVER", "sqlite"),
		DBDSN:         os.Getenv("DB_DSN"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000"),
		RetryBaseWait: time.Duration(envInt("RETRY_BASE_MS", 250)) * time.Millisecond,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
