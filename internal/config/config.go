// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// RatePerMinute is the invoice tariff in whole currency units per minute.
	RatePerMinute int64

	// InvoiceDedupe makes a second invoice request for the same stay return
	// the existing invoice instead of creating another one.
	InvoiceDedupe bool

	// RecordRejectedEvents appends an unaccepted event when an entry or exit
	// cannot be applied to the plate's stays.
	RecordRejectedEvents bool

	// AMQPURL is the RabbitMQ URL for lifecycle notifications.
	// Empty disables publishing.
	AMQPURL      string
	AMQPExchange string

	// RateLimitRPS is the sustained per-client request rate. 0 disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is read first when present; variables
// already set in the environment win over the file.
// Returns an error listing any required variables that are not set and any
// values that do not parse.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load: reading .env: %w", err)
	}

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "parking"),
	}

	var missing, invalid []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	p := parser{invalid: &invalid}
	cfg.RatePerMinute = p.parseInt("RATE_PER_MINUTE", 80)
	cfg.InvoiceDedupe = p.parseBool("INVOICE_DEDUPE", false)
	cfg.RecordRejectedEvents = p.parseBool("RECORD_REJECTED_EVENTS", true)
	cfg.RateLimitRPS = p.parseFloat("RATE_LIMIT_RPS", 20)
	cfg.RateLimitBurst = int(p.parseInt("RATE_LIMIT_BURST", 40))
	cfg.MaxBodyBytes = p.parseInt("MAX_BODY_BYTES", 1<<20)

	if cfg.RatePerMinute <= 0 {
		invalid = append(invalid, "RATE_PER_MINUTE")
	}
	if cfg.RateLimitRPS < 0 {
		invalid = append(invalid, "RATE_LIMIT_RPS")
	}
	if cfg.RateLimitBurst < 1 {
		invalid = append(invalid, "RATE_LIMIT_BURST")
	}
	if cfg.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}
	if len(invalid) > 0 {
		errs = append(errs, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", ")))
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parser reads typed variables, recording the name of every value that
// fails to parse instead of stopping at the first one.
type parser struct {
	invalid *[]string
}

func (p parser) parseInt(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		*p.invalid = append(*p.invalid, key)
		return fallback
	}
	return n
}

func (p parser) parseFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		*p.invalid = append(*p.invalid, key)
		return fallback
	}
	return f
}

func (p parser) parseBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		*p.invalid = append(*p.invalid, key)
		return fallback
	}
	return b
}
