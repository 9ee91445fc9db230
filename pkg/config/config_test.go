package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.3, cfg.Organizer.SimilarityThreshold)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "page-ingest", cfg.Kafka.Topics.PageIngest)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9999
organizer:
  similarityThreshold: 0.5
redis:
  enabled: true
  poolSize: 20
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 0.5, cfg.Organizer.SimilarityThreshold)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 20, cfg.Redis.PoolSize)
	assert.Equal(t, 60*time.Second, cfg.Redis.CacheTTL)
	// Untouched sections keep their defaults.
	assert.Equal(t, "organizer-group", cfg.Kafka.ConsumerGroup)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ORG_SERVER_PORT", "7070")
	t.Setenv("ORG_SIMILARITY_THRESHOLD", "0.42")
	t.Setenv("ORG_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("ORG_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 0.42, cfg.Organizer.SimilarityThreshold)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidEnvValuesIgnored(t *testing.T) {
	t.Setenv("ORG_SERVER_PORT", "not-a-port")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
