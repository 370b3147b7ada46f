package entities

import "time"

type OrderStatusType string

const (
	OrderPendingPayment OrderStatusType = "pending_payment"
	OrderPaid           OrderStatusType = "paid"
	OrderCancelled      OrderStatusType = "cancelled"
	OrderRefunded       OrderStatusType = "refunded"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderItem struct {
	MenuItemID int64
	Name       string
	Quantity   int64
	UnitPrice  float64
}

type Order struct {
	ID           string
	CustomerID   int64
	ZoneID       int64
	PostalCode   string
	DeliveryDay  DeliveryDay
	DeliveryDate time.Time
	DeliveryFee  float64
	Items        []OrderItem
	Subtotal     float64
	Total        float64
	Status       OrderStatusType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderModify struct {
	ID     *string
	Status *OrderStatusType
}

// CheckoutItem - позиция корзины на входе в оформление заказа.
// Сама корзина живёт на клиенте, сервер получает уже финальный список.
type CheckoutItem struct {
	MenuItemID int64
	Quantity   int64
}
