package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig groups every runtime knob read from the environment.
type AppConfig struct {
	Port string

	DatabaseURL     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBStmtTimeoutMS int

	CorsAllowOrigins []string
	RateLimitMax     int
	RequestTimeout   time.Duration
	LogLevel         string

	SeedFile string
}

// =======================
// ENV LOADER
// =======================

// LoadEnv reads .env (outside of platforms that inject env themselves)
// and returns the resolved configuration.
func LoadEnv() AppConfig {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" && os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			Log.Warn("no .env file found, using system environment")
		} else {
			Log.Info(".env file loaded")
		}
	} else {
		Log.Info("running on a managed platform, using system environment")
	}

	cfg := AppConfig{
		Port: GetEnv("PORT", "8000"),

		DatabaseURL:     GetEnv("DATABASE_URL"),
		DBHost:          GetEnv("DB_HOST", "localhost"),
		DBPort:          GetEnv("DB_PORT", "5432"),
		DBUser:          GetEnv("DB_USER", "postgres"),
		DBPassword:      GetEnv("DB_PASSWORD"),
		DBName:          GetEnv("DB_NAME", "hrms"),
		DBSSLMode:       GetEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns:  GetEnvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:  GetEnvInt("DB_MAX_IDLE_CONNS", 10),
		DBStmtTimeoutMS: GetEnvInt("DB_STATEMENT_TIMEOUT_MS", 3000),

		CorsAllowOrigins: splitList(GetEnv("CORS_ALLOW_ORIGINS")),
		RateLimitMax:     GetEnvInt("RATE_LIMIT_MAX", 100),
		RequestTimeout:   GetEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
		LogLevel:         GetEnv("LOG_LEVEL", "info"),

		SeedFile: GetEnv("SEED_FILE"),
	}

	if cfg.DatabaseURL == "" && cfg.DBPassword == "" {
		Log.Warn("DB_PASSWORD is empty")
	}
	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		Log.WithField("key", key).Warnf("invalid integer %q, using %d", v, def)
		return def
	}
	return n
}

// GetEnvDuration accepts Go durations ("5s") or plain seconds ("5").
func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	Log.WithField("key", key).Warnf("invalid duration %q, using %s", v, def)
	return def
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
