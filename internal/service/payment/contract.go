//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"fitbox/internal/entities"
)

type OrderService interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
	MarkOrderPaid(ctx context.Context, orderID string) error
	CancelOrderForFailedPayment(ctx context.Context, orderID string) error
	RefundOrder(ctx context.Context, orderID string) error
}

type (
	ExecuteFn      func(ctx context.Context, orderID string) error
	HandlerFactory interface {
		GetHandler(status entities.PaymentStatusType) (ExecuteFn, error)
	}
)
