package payment_status_changed

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
	ProcessPaymentStatusChange(ctx context.Context, event entities.PaymentEvent) (*entities.Order, error)
}
