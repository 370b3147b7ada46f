package payment_handle

import (
	"context"
	"fmt"

	"fitbox/internal/entities"
	"fitbox/internal/service/payment"
)

type StatusHandlerFactory struct {
	orderService payment.OrderService
}

func NewStatusHandlerFactory(orderService payment.OrderService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		orderService: orderService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.PaymentStatusType) (payment.ExecuteFn, error) {
	switch status {
	// authorized и captured приводят заказ в paid: переход идемпотентный,
	// повторное событие от провайдера ничего не меняет.
	case entities.PaymentAuthorized, entities.PaymentCaptured:
		return f.authorizedHandler, nil
	case entities.PaymentFailed:
		return f.failedHandler, nil
	case entities.PaymentRefunded:
		return f.refundedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", payment.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) authorizedHandler(ctx context.Context, orderID string) error {
	err := f.orderService.MarkOrderPaid(ctx, orderID)
	if err != nil {
		return fmt.Errorf("mark order %s paid: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) failedHandler(ctx context.Context, orderID string) error {
	err := f.orderService.CancelOrderForFailedPayment(ctx, orderID)
	if err != nil {
		return fmt.Errorf("cancel order %s after failed payment: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) refundedHandler(ctx context.Context, orderID string) error {
	err := f.orderService.RefundOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("refund order %s: %w", orderID, err)
	}
	return nil
}
