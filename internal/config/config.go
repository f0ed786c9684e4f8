package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendSQLite = "sqlite"
	SessionBackendRedis  = "redis"

	RacePolicySequence = "sequence"
	RacePolicyArrival  = "arrival"
)

type Config struct {
	Port string

	APIBaseURL string
	APITimeout time.Duration

	SessionBackend string
	SQLitePath     string
	RedisAddress   string
	RedisPassword  string
	RedisDB        int
	SessionTTL     time.Duration

	RacePolicy      string
	ViewIdleTimeout time.Duration

	CORSAllowedOrigins []string
	LogLevel           logrus.Level
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	var parser envParser

	// In all cases the default behavior should be for the local dev setup
	env := Config{
		Port:               getEnv("PORT", "9446"),
		APIBaseURL:         getEnv("API_BASE_URL", "http://localhost:8000"),
		APITimeout:         parser.duration("API_TIMEOUT", 10*time.Second),
		SessionBackend:     getEnv("SESSION_BACKEND", SessionBackendMemory),
		SQLitePath:         getEnv("SQLITE_PATH", "./data/sessions.db"),
		RedisAddress:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            parser.int("REDIS_DB", 0),
		SessionTTL:         parser.duration("SESSION_TTL", 720*time.Hour),
		RacePolicy:         getEnv("RACE_POLICY", RacePolicySequence),
		ViewIdleTimeout:    parser.duration("VIEW_IDLE_TIMEOUT", 30*time.Minute),
		CORSAllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		LogLevel:           parser.logLevel("LOG_LEVEL", logrus.InfoLevel),
	}

	problems := append(parser.problems, env.problems()...)
	if err := problemsError(problems); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	return problemsError(c.problems())
}

func problemsError(problems []string) error {
	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (c *Config) problems() []string {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if parsed, err := url.Parse(c.APIBaseURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
	}

	if c.APITimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid API timeout %v: must be positive", c.APITimeout))
	}

	switch c.SessionBackend {
	case SessionBackendMemory:
	case SessionBackendSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH cannot be empty when using the sqlite session backend")
		}
	case SessionBackendRedis:
		if c.RedisAddress == "" {
			problems = append(problems, "REDIS_ADDR cannot be empty when using the redis session backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid session backend '%s': must be one of memory, sqlite, redis", c.SessionBackend))
	}

	if c.SessionTTL < 0 {
		problems = append(problems, fmt.Sprintf("invalid session TTL %v: must not be negative", c.SessionTTL))
	}

	if c.RacePolicy != RacePolicySequence && c.RacePolicy != RacePolicyArrival {
		problems = append(problems, fmt.Sprintf("invalid race policy '%s': must be 'sequence' or 'arrival'", c.RacePolicy))
	}

	if c.ViewIdleTimeout < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid view idle timeout %v: must be at least 1 minute", c.ViewIdleTimeout))
	}

	return problems
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// envParser reads typed variables and records the ones that do not parse.
type envParser struct {
	problems []string
}

func (p *envParser) fail(key, value string, err error) {
	p.problems = append(p.problems, fmt.Sprintf("invalid %s '%s': %v", key, value, err))
}

func (p *envParser) int(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		p.fail(key, value, err)
		return fallback
	}
	return i
}

func (p *envParser) duration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		p.fail(key, value, err)
		return fallback
	}
	return d
}

func (p *envParser) logLevel(key string, fallback logrus.Level) logrus.Level {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	level, err := logrus.ParseLevel(value)
	if err != nil {
		p.fail(key, value, err)
		return fallback
	}
	return level
}
