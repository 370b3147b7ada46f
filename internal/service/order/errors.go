package order

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderExists    = errors.New("order already exists")
	ErrEmptyOrder     = errors.New("order has no items")
	ErrNotServiceable = errors.New("postal code is not serviceable")

	// ErrSlotUnavailable - слот не предлагается зоной или дедлайн прошёл.
	// ErrSlotFull - слот предлагается, но лимит заказов выбран.
	ErrSlotUnavailable = errors.New("delivery slot unavailable")
	ErrSlotFull        = errors.New("delivery slot is full")

	ErrUnknownMenuItem = errors.New("unknown menu item")
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrInvalidStatusTransition - попытка перевести заказ в статус,
	// недопустимый из текущего (например refund неоплаченного).
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)
