package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Clustering.MinClusterSize)
	assert.Equal(t, 10, cfg.Clustering.MaxClusterSize)
	assert.Equal(t, float32(0.6), cfg.Clustering.SimilarityThreshold)
	assert.Equal(t, 0.05, cfg.Clustering.SelectionEpsilon)
	assert.Equal(t, int64(42), cfg.Clustering.Seed)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  addr: ":9090"
clustering:
  max_cluster_size: 6
embedding:
  provider: static
  dimension: 64
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 6, cfg.Clustering.MaxClusterSize)
	assert.Equal(t, "static", cfg.Embedding.Provider)
	assert.Equal(t, 64, cfg.Embedding.Dimension)

	// Untouched values keep their defaults.
	assert.Equal(t, 2, cfg.Clustering.MinClusterSize)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("TEST_TABGROUP_KEY", "sk-test")

	cfg := EmbeddingConfig{APIKeyEnv: "TEST_TABGROUP_KEY"}
	assert.Equal(t, "sk-test", cfg.APIKey())
}
