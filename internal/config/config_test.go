package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"MONGO_URI", "MONGO_DB_NAME",
		"REDIS_HOST", "REDIS_PASSWORD", "REDIS_STREAM_KEY",
		"REDIS_CONSUMER_GROUP", "REDIS_DEAD_LETTER_KEY",
		"STREAM_RETENTION_DURATION",
		"ETHERSCAN_BASE_URL", "ETHERSCAN_API_KEY",
		"JWT_SECRET", "JWT_ISSUER",
		"RATE_LIMIT_RPS", "MAX_CONCURRENT_MATCH", "WORKER_POOL_SIZE",
		"MATCH_TIMEOUT", "TOP_PAIRS",
		"LOG_LEVEL", "SERVER_PORT",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisHost)
	assert.Equal(t, "clonelens:abi:stream", cfg.RedisStreamKey)
	assert.Equal(t, "clonelens:group", cfg.RedisConsumerGroup)
	assert.Equal(t, "clonelens:dlq", cfg.RedisDeadLetterKey)
	assert.Equal(t, 24*time.Hour, cfg.StreamRetentionDuration)
	assert.Equal(t, "https://api.etherscan.io/api", cfg.EtherscanBaseURL)
	assert.Equal(t, "clonelens", cfg.JWTIssuer)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 4, cfg.MaxConcurrentMatch)
	assert.Equal(t, 0, cfg.WorkerPoolSize)
	assert.Equal(t, 10*time.Minute, cfg.MatchTimeout)
	assert.Equal(t, 20, cfg.TopPairs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.ServerPort)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB_NAME", "clonelens_test")
	t.Setenv("STREAM_RETENTION_DURATION", "48h")
	t.Setenv("MATCH_TIMEOUT", "90s")
	t.Setenv("TOP_PAIRS", "5")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "clonelens_test", cfg.MongoDBName)
	assert.Equal(t, 48*time.Hour, cfg.StreamRetentionDuration)
	assert.Equal(t, 90*time.Second, cfg.MatchTimeout)
	assert.Equal(t, 5, cfg.TopPairs)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("STREAM_RETENTION_DURATION", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.StreamRetentionDuration)
}

func validConfig() *Config {
	return &Config{
		MongoURI:                "mongodb://localhost:27017",
		MongoDBName:             "clonelens",
		RedisHost:               "localhost:6379",
		JWTSecret:               "secret",
		MaxConcurrentMatch:      4,
		TopPairs:                20,
		StreamRetentionDuration: 24 * time.Hour,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing mongo uri", func(c *Config) { c.MongoURI = "" }, "MONGO_URI"},
		{"missing mongo db", func(c *Config) { c.MongoDBName = "" }, "MONGO_DB_NAME"},
		{"missing redis host", func(c *Config) { c.RedisHost = "" }, "REDIS_HOST"},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET"},
		{"zero concurrency", func(c *Config) { c.MaxConcurrentMatch = 0 }, "MAX_CONCURRENT_MATCH"},
		{"zero top pairs", func(c *Config) { c.TopPairs = 0 }, "TOP_PAIRS"},
		{"zero retention", func(c *Config) { c.StreamRetentionDuration = 0 }, "STREAM_RETENTION_DURATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
