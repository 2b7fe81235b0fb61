package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	ServerPort   string
	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	MaxOpenConns int
	CORSOrigin   string
}

const defaultMaxOpenConns = 10

// Load reads configuration from the environment, applying defaults that
// match local development. DATABASE_URL, when set, wins over the
// discrete DB_* variables.
func Load() *Config {
	return &Config{
		ServerPort:   fallback(os.Getenv("SERVER_PORT"), "8080"),
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBHost:       fallback(os.Getenv("DB_HOST"), "localhost"),
		DBPort:       fallback(os.Getenv("DB_PORT"), "5432"),
		DBUser:       fallback(os.Getenv("DB_USER"), "postgres"),
		DBPassword:   fallback(os.Getenv("DB_PASSWORD"), "password"),
		DBName:       fallback(os.Getenv("DB_NAME"), "gamestore"),
		DBSSLMode:    fallback(os.Getenv("DB_SSLMODE"), "disable"),
		MaxOpenConns: intFallback(os.Getenv("DB_MAX_OPEN_CONNS"), defaultMaxOpenConns),
		CORSOrigin:   fallback(os.Getenv("CORS_ORIGIN"), "*"),
	}
}

// GetDBConnectionString returns the lib/pq connection string.
func (c *Config) GetDBConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func intFallback(value string, def int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
