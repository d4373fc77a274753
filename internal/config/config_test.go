package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.False(t, cfg.RedisTLS)
	assert.Equal(t, "deepseek/deepseek-chat-v3.1:free", cfg.OpenRouterModel)
	assert.Equal(t, 20*time.Second, cfg.ClassifierTimeout)
	assert.Equal(t, 100, cfg.ClassifierMaxTokens)
	assert.Equal(t, 10*time.Minute, cfg.LocationContextTTL)
	assert.Equal(t, 24*time.Hour, cfg.ConversationTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("CLASSIFIER_TIMEOUT", "5s")
	t.Setenv("CLASSIFIER_MAX_TOKENS", "256")
	t.Setenv("CONVERSATION_TTL", "48h")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.RedisTLS)
	assert.Equal(t, 5*time.Second, cfg.ClassifierTimeout)
	assert.Equal(t, 256, cfg.ClassifierMaxTokens)
	assert.Equal(t, 48*time.Hour, cfg.ConversationTTL)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("CLASSIFIER_MAX_TOKENS", "not-a-number")
	t.Setenv("CLASSIFIER_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 100, cfg.ClassifierMaxTokens)
	assert.Equal(t, 20*time.Second, cfg.ClassifierTimeout)
}
