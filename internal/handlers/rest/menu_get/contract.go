package menu_get

import (
	"context"

	"fitbox/internal/entities"
	"fitbox/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetCurrentMenu(ctx context.Context) ([]entities.MenuItem, error)
}
