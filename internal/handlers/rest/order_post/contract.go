//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_post_test
package order_post

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
	Checkout(
		ctx context.Context,
		customerID int64,
		rawPostalCode string,
		day entities.DeliveryDay,
		items []entities.CheckoutItem,
	) (*entities.Order, error)
}
