package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitbox/internal/entities"
)

type Service struct {
	repository          Repository
	availabilityService AvailabilityService
	menuService         MenuService
	paymentGateway      PaymentGateway
	txManager           TxManager
	pendingTTL          time.Duration
	now                 func() time.Time
}

func New(
	repository Repository,
	availabilityService AvailabilityService,
	menuService MenuService,
	paymentGateway PaymentGateway,
	txManager TxManager,
	pendingTTL time.Duration,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repository:          repository,
		availabilityService: availabilityService,
		menuService:         menuService,
		paymentGateway:      paymentGateway,
		txManager:           txManager,
		pendingTTL:          pendingTTL,
		now:                 now,
	}
}

// Checkout оформляет заказ: проверяет доступность слота по индексу,
// пересчитывает цены по серверному меню (клиентским суммам не верим)
// и резервирует место в слоте внутри транзакции.
func (s *Service) Checkout(
	ctx context.Context,
	customerID int64,
	rawPostalCode string,
	day entities.DeliveryDay,
	items []entities.CheckoutItem,
) (*entities.Order, error) {
	if !isValidCheckoutItems(items) {
		return nil, ErrEmptyOrder
	}

	if !day.Valid() {
		return nil, fmt.Errorf("%w: unknown delivery day %q", ErrSlotUnavailable, day)
	}

	result, err := s.availabilityService.Check(ctx, rawPostalCode)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	if !result.Serviceable {
		return nil, fmt.Errorf("%w: %s", ErrNotServiceable, result.PostalCode)
	}

	slot, ok := findSlot(result.Slots, day)
	if !ok || !slot.Available {
		return nil, fmt.Errorf("%w: %s", ErrSlotUnavailable, day)
	}

	orderItems, subtotal, err := s.priceItems(ctx, items)
	if err != nil {
		return nil, err
	}

	zone := result.Zone
	orderEntity := entities.Order{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		ZoneID:       zone.ID,
		PostalCode:   result.PostalCode,
		DeliveryDay:  day,
		DeliveryDate: slot.Slot.Date,
		DeliveryFee:  zone.DeliveryFee,
		Items:        orderItems,
		Subtotal:     subtotal,
		Total:        subtotal + zone.DeliveryFee,
		Status:       entities.OrderPendingPayment,
	}

	var created *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if zone.MaxOrdersPerSlot != nil {
			count, err := s.repository.CountForSlot(ctx, zone.ID, slot.Slot.Date)
			if err != nil {
				return fmt.Errorf("count slot orders: %w", err)
			}
			if count >= *zone.MaxOrdersPerSlot {
				return fmt.Errorf("%w: %s %s", ErrSlotFull, day, slot.Slot.Date.Format(time.DateOnly))
			}
		}

		created, err = s.repository.Create(ctx, orderEntity)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.paymentGateway.Authorize(ctx, created.ID, created.Total)
	if err != nil {
		if errors.Is(err, ErrPaymentDeclined) {
			cancelled := entities.OrderCancelled
			_, updateErr := s.repository.UpdateStatus(ctx, entities.OrderModify{
				ID:     &created.ID,
				Status: &cancelled,
			})
			if updateErr != nil {
				return nil, fmt.Errorf("cancel declined order: %w", updateErr)
			}
			return nil, ErrPaymentDeclined
		}
		// Сбой инициации платежа не валит оформление: заказ остаётся
		// pending_payment, его судьбу решит событие провайдера либо
		// чистка просроченных.
		return created, nil
	}

	return created, nil
}

func (s *Service) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	return s.repository.GetByID(ctx, orderID)
}

func (s *Service) ListOrders(ctx context.Context, customerID int64) ([]entities.Order, error) {
	return s.repository.GetByCustomer(ctx, customerID)
}

// MarkOrderPaid переводит заказ в paid по подтверждению оплаты.
// Повторное событие того же статуса - не ошибка, Kafka доставляет
// at-least-once.
func (s *Service) MarkOrderPaid(ctx context.Context, orderID string) error {
	return s.applyTransition(ctx, orderID, entities.OrderPendingPayment, entities.OrderPaid)
}

func (s *Service) CancelOrderForFailedPayment(ctx context.Context, orderID string) error {
	return s.applyTransition(ctx, orderID, entities.OrderPendingPayment, entities.OrderCancelled)
}

func (s *Service) RefundOrder(ctx context.Context, orderID string) error {
	return s.applyTransition(ctx, orderID, entities.OrderPaid, entities.OrderRefunded)
}

// ExpireStalePendingOrders отменяет заказы, чья оплата так и не
// подтвердилась за отведённое окно. Возвращает число отменённых.
func (s *Service) ExpireStalePendingOrders(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.pendingTTL)

	rowsAffected, err := s.repository.CancelPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("expire stale orders timed out: %w", err)
		}
		return 0, fmt.Errorf("expire stale orders: %w", err)
	}

	return rowsAffected, nil
}

func (s *Service) applyTransition(ctx context.Context, orderID string, from, to entities.OrderStatusType) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if orderEntity.Status == to {
			return nil
		}

		if orderEntity.Status != from {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, orderEntity.Status, to)
		}

		_, err = s.repository.UpdateStatus(ctx, entities.OrderModify{
			ID:     &orderID,
			Status: &to,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
}

func (s *Service) priceItems(ctx context.Context, items []entities.CheckoutItem) ([]entities.OrderItem, float64, error) {
	// повторяющиеся позиции корзины схлопываем
	quantities := make(map[int64]int64, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, seen := quantities[item.MenuItemID]; !seen {
			ids = append(ids, item.MenuItemID)
		}
		quantities[item.MenuItemID] += item.Quantity
	}

	menuItems, err := s.menuService.GetActiveItems(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("get menu items: %w", err)
	}

	byID := make(map[int64]entities.MenuItem, len(menuItems))
	for _, menuItem := range menuItems {
		byID[menuItem.ID] = menuItem
	}

	orderItems := make([]entities.OrderItem, 0, len(ids))
	var subtotal float64
	for _, id := range ids {
		menuItem, ok := byID[id]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %d", ErrUnknownMenuItem, id)
		}

		quantity := quantities[id]
		orderItems = append(orderItems, entities.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   quantity,
			UnitPrice:  menuItem.Price,
		})
		subtotal += float64(quantity) * menuItem.Price
	}

	return orderItems, subtotal, nil
}

func findSlot(slots []entities.SlotAvailability, day entities.DeliveryDay) (entities.SlotAvailability, bool) {
	for _, slot := range slots {
		if slot.Slot.Day == day {
			return slot, true
		}
	}
	return entities.SlotAvailability{}, false
}
