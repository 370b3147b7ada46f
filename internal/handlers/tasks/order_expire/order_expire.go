package order_expire

import (
	"context"
	"time"

	"fitbox/pkg/logger"
)

type Service interface {
	ExpireStalePendingOrders(ctx context.Context) (int64, error)
}

// OrderExpire отменяет заказы, зависшие в pending_payment дольше TTL.
type OrderExpire struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderExpire(log logger.Logger, service Service, interval time.Duration) *OrderExpire {
	return &OrderExpire{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderExpire) TTL() time.Duration {
	return o.interval
}

func (o *OrderExpire) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	rowsAffected, err := o.service.ExpireStalePendingOrders(ctxWithTimeout)

	if rowsAffected > 0 {
		o.log.With(
			logger.NewField("expired_orders", rowsAffected),
		).Info("stale order expire")
	}

	return err
}

func (o *OrderExpire) Info() string {
	return "stale order expire"
}
