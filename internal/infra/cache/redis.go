package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const gateTTL = 48 * time.Hour

// RedisGate is a dedup gate shared between bot instances. A key is set once per
// (chat, day); later attempts for the same day are suppressed. The gate is
// best-effort: when Redis is unreachable the attempt falls through to the
// store, whose conditional insert still guarantees a single pole.
type RedisGate struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewRedisGate creates the gate.
func NewRedisGate(client *redis.Client, logger zerolog.Logger) *RedisGate {
	return &RedisGate{client: client, log: logger}
}

// ShouldProcess reports whether the (chat, day) pair is seen for the first time
// and marks it as seen.
func (g *RedisGate) ShouldProcess(chatID, dayKey int64) bool {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ok, err := g.client.SetNX(ctx, gateKey(chatID, dayKey), "1", gateTTL).Result()
	if err != nil {
		g.log.Warn().Err(err).Int64("chat", chatID).Msg("dedup gate unavailable, falling through to store")
		return true
	}
	return ok
}

func gateKey(chatID, dayKey int64) string {
	return fmt.Sprintf("pole_gate:%d:%d", chatID, dayKey)
}
