package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables consulted for CLI defaults.
const (
	EnvDBPath     = "ROBOTS_DB"
	EnvConfigPath = "ROBOTS_CONFIG"
	EnvSeed       = "ROBOTS_SEED"
	EnvLogLevel   = "ROBOTS_LOG_LEVEL"
)

// LoadEnv reads .env files into the process environment.
// A missing file is not an error; variables already set are not overridden.
func LoadEnv(files ...string) error {
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			present = append(present, ".env")
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// EnvString returns the variable's value or fallback when unset or empty.
func EnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvInt64 returns the variable parsed as int64, or fallback when unset or malformed.
func EnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
