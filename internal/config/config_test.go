package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "API_BASE_URL", "API_TIMEOUT", "SESSION_BACKEND", "SQLITE_PATH",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "SESSION_TTL", "RACE_POLICY",
		"VIEW_IDLE_TIMEOUT", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "9446", cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, SessionBackendMemory, cfg.SessionBackend)
	assert.Equal(t, RacePolicySequence, cfg.RacePolicy)
	assert.Equal(t, 30*time.Minute, cfg.ViewIdleTimeout)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RACE_POLICY", "arrival")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, SessionBackendRedis, cfg.SessionBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, RacePolicyArrival, cfg.RacePolicy)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestProcessEnvironmentVariables_BadLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := ProcessEnvironmentVariables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid LOG_LEVEL 'loud'")
}

func TestProcessEnvironmentVariables_UnparsableValuesAreReported(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIEW_IDLE_TIMEOUT", "5")
	t.Setenv("REDIS_DB", "x")
	t.Setenv("API_TIMEOUT", "soon")
	t.Setenv("SESSION_TTL", "forever")
	t.Setenv("RACE_POLICY", "random")

	_, err := ProcessEnvironmentVariables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid VIEW_IDLE_TIMEOUT '5'")
	assert.Contains(t, err.Error(), "invalid REDIS_DB 'x'")
	assert.Contains(t, err.Error(), "invalid API_TIMEOUT 'soon'")
	assert.Contains(t, err.Error(), "invalid SESSION_TTL 'forever'")
	assert.Contains(t, err.Error(), "invalid race policy 'random'", "parse and validation problems are reported together")
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := &Config{
		Port:            "99999",
		APIBaseURL:      "ftp://remote",
		APITimeout:      0,
		SessionBackend:  "etcd",
		RacePolicy:      "random",
		ViewIdleTimeout: time.Second,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 99999")
	assert.Contains(t, err.Error(), "invalid API base URL scheme 'ftp'")
	assert.Contains(t, err.Error(), "invalid API timeout")
	assert.Contains(t, err.Error(), "invalid session backend 'etcd'")
	assert.Contains(t, err.Error(), "invalid race policy 'random'")
	assert.Contains(t, err.Error(), "invalid view idle timeout")
}

func TestValidate_SQLiteRequiresPath(t *testing.T) {
	cfg := &Config{
		Port:            "9446",
		APIBaseURL:      "http://localhost:8000",
		APITimeout:      time.Second,
		SessionBackend:  SessionBackendSQLite,
		RacePolicy:      RacePolicySequence,
		ViewIdleTimeout: time.Hour,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SQLITE_PATH")

	cfg.SQLitePath = "/tmp/sessions.db"
	assert.NoError(t, cfg.Validate())
}
