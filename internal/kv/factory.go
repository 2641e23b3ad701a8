package kv

import (
	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/logger"
)

// NewStore selects the backing medium. With no Redis address configured,
// or when Redis is unreachable, it falls back to the in-memory store so a
// development instance still comes up.
func NewStore(redisAddr, redisPassword string) Store {
	if redisAddr == "" {
		logger.Info("using in-memory key-value store", nil)
		return NewMemoryStore()
	}

	store, err := NewRedisStore(redisAddr, redisPassword)
	if err != nil {
		logger.Warn("redis connection failed, falling back to in-memory store", map[string]any{
			"addr":  redisAddr,
			"error": err.Error(),
		})
		return NewMemoryStore()
	}

	logger.Info("using redis key-value store", map[string]any{
		"addr": redisAddr,
	})
	return store
}
