package key_rate_limiter

import (
	"context"

	"fitbox/pkg/logger"
)

type KeyLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
