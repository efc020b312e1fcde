package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"base_url": "https://admin.example.com",
		"api_token": "secret-token",
		"timeout_seconds": 15,
		"page_size": 25,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://admin.example.com", cfg.BaseURL)
	assert.Equal(t, "secret-token", cfg.APIToken)
	assert.Equal(t, 15, cfg.TimeoutSeconds)
	assert.Equal(t, 25, cfg.PageSize)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("TALENT_BASE_URL", "https://env.example.com")
	t.Setenv("TALENT_API_TOKEN", "env-token")

	cfg := &Config{BaseURL: "https://file.example.com", APIToken: "file-token"}
	cfg.ApplyEnv()

	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, "env-token", cfg.APIToken)
}

func TestApplyEnv_UnsetLeavesFileValues(t *testing.T) {
	t.Setenv("TALENT_BASE_URL", "")
	t.Setenv("TALENT_API_TOKEN", "")

	cfg := &Config{BaseURL: "https://file.example.com", APIToken: "file-token"}
	cfg.ApplyEnv()

	assert.Equal(t, "https://file.example.com", cfg.BaseURL)
	assert.Equal(t, "file-token", cfg.APIToken)
}

func TestValidate_BadBaseURL(t *testing.T) {
	cfg := &Config{BaseURL: "not a url"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")
}

func TestValidate_PageSizeCap(t *testing.T) {
	cfg := &Config{PageSize: 500}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "page_size")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		BaseURL:        "https://admin.example.com",
		TimeoutSeconds: 30,
		PageSize:       10,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Defaults()

	partial := Config{
		BaseURL: "https://admin.example.com",
		Verbose: true,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "https://admin.example.com", merged.BaseURL)
	assert.True(t, merged.Verbose)

	// Default values should fill in zero fields
	assert.Equal(t, 30, merged.TimeoutSeconds)
	assert.Equal(t, 10, merged.PageSize)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		BaseURL:  "https://admin.example.com",
		APIToken: "token",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "https://admin.example.com", merged.BaseURL)
	assert.Equal(t, "token", merged.APIToken)
}
