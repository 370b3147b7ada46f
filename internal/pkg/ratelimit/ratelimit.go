package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyLimiter ограничивает частоту запросов по произвольному ключу
// (клиентский IP, покупатель). Счётчик фиксированного окна живёт в
// Redis, лимит общий на все инстансы сервиса.
type KeyLimiter struct {
	client redis.Cmdable
	prefix string
	limit  int64
	window time.Duration
}

func New(client redis.Cmdable, prefix string, limit int64, window time.Duration) *KeyLimiter {
	return &KeyLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (l *KeyLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.prefix + ":" + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	// NX: TTL выставляется только первым запросом окна
	pipe.ExpireNX(ctx, redisKey, l.window)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}

	return incr.Val() <= l.limit, nil
}
