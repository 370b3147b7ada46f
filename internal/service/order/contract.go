//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"fitbox/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
	CountForSlot(ctx context.Context, zoneID int64, deliveryDate time.Time) (int64, error)

	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)

	CancelPendingCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type AvailabilityService interface {
	Check(ctx context.Context, rawPostalCode string) (*entities.Availability, error)
}

type MenuService interface {
	GetActiveItems(ctx context.Context, ids []int64) ([]entities.MenuItem, error)
}

type PaymentGateway interface {
	Authorize(ctx context.Context, orderID string, amount float64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
