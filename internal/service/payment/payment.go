package payment

import (
	"context"
	"errors"
	"fmt"

	"fitbox/internal/entities"
)

type Service struct {
	orderService  OrderService
	statusFactory HandlerFactory
}

func New(orderService OrderService, statusFactory HandlerFactory) *Service {
	return &Service{
		orderService:  orderService,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessPaymentStatusChange(ctx context.Context, event entities.PaymentEvent) (*entities.Order, error) {
	if event.OrderID == "" {
		return nil, ErrMissingOrderID
	}

	// Верификация: событие должно ссылаться на существующий заказ
	order, err := s.orderService.GetOrderByID(ctx, event.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", event.OrderID, err)
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order.ID); err != nil {
		return nil, err
	}

	return order, nil
}
