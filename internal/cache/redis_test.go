package cache

import (
	"testing"

	"github.com/Domenick1991/airops/config"
	"github.com/stretchr/testify/assert"
)

func TestResetCooldownKey_IgnoresCase(t *testing.T) {
	assert.Equal(t, "cooldown:password-reset:alice@example.com", resetCooldownKey("Alice@Example.com"))
}

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"})
	assert.NotNil(t, c)
	assert.NoError(t, c.Close())
}
