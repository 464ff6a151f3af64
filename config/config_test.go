package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configData := `
port: "9000"
debug: true
ai_provider: openai
ai_endpoint: "http://localhost:1234/v1"
model: "mistral"

simplifier:
  max_chunk_size: 5000
  sub_chunk_size: 2000
  max_attempts: 5
  requests_per_second: 2.0
  max_upload_bytes: 1048576
`
	err := os.WriteFile(configPath, []byte(configData), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "9000", config.Port)
	assert.True(t, config.Debug)
	assert.Equal(t, ProviderOpenAI, config.AIProvider)
	assert.Equal(t, "http://localhost:1234/v1", config.AIEndpoint)
	assert.Equal(t, "mistral", config.Model)
	assert.Equal(t, 5000, config.Simplifier.MaxChunkSize)
	assert.Equal(t, 2000, config.Simplifier.SubChunkSize)
	assert.Equal(t, 5, config.Simplifier.MaxAttempts)
	assert.Equal(t, 2.0, config.Simplifier.RequestsPerSecond)
	assert.Equal(t, int64(1048576), config.Simplifier.MaxUploadBytes)
}

func TestLoadConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("debug: false\n"), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "8000", config.Port)
	assert.Equal(t, ProviderGemini, config.AIProvider)
	assert.Equal(t, "gemini-1.5-pro-latest", config.Model)
	assert.Equal(t, 15000, config.Simplifier.MaxChunkSize)
	assert.Equal(t, 8000, config.Simplifier.SubChunkSize)
	assert.Equal(t, 3, config.Simplifier.MaxAttempts)
}

func TestLoadConfigUnknownProvider(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("ai_provider: anthropic\n"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ai_provider")
}

func TestGoogleAPIKeys(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"single key", "key-1", []string{"key-1"}},
		{"multiple keys", "key-1, key-2,key-3", []string{"key-1", "key-2", "key-3"}},
		{"empty", "", []string{}},
		{"trailing comma", "key-1,", []string{"key-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{GoogleAPIKey: tt.value}
			assert.Equal(t, tt.want, c.GoogleAPIKeys())
		})
	}
}
