package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.openai.com/v1", cfg.Host)
	assert.Equal(t, "none", cfg.Token)
	assert.Equal(t, "gpt-4o", cfg.Model)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://localhost:11434/v1"),
		WithToken("sk-test"),
		WithModel("qwen2.5:3b"),
	)

	assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	assert.Equal(t, "sk-test", cfg.Token)
	assert.Equal(t, "qwen2.5:3b", cfg.Model)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"adds v1 suffix", "http://localhost:11434", "http://localhost:11434/v1"},
		{"strips trailing slash before suffix", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"keeps existing suffix", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty host untouched", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{"valid", &Config{Host: "https://api.openai.com/v1", Token: "sk-test", Model: "gpt-4o"}, ""},
		{"missing host", &Config{Token: "sk-test", Model: "gpt-4o"}, "Host is required"},
		{"missing token", &Config{Host: "https://api.openai.com/v1", Model: "gpt-4o"}, "Token is required"},
		{"missing model", &Config{Host: "https://api.openai.com/v1", Token: "sk-test"}, "Model is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsValidTag(t *testing.T) {
	for _, tag := range CallTags {
		assert.True(t, IsValidTag(tag), tag)
	}
	assert.False(t, IsValidTag("random_tag"))
	assert.False(t, IsValidTag(""))
	assert.False(t, IsValidTag("NEEDS_FOLLOW_UP"))
}
