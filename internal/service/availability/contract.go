//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_test
package availability

import (
	"context"
	"time"

	"fitbox/internal/entities"
)

type ZoneRegistry interface {
	GetActiveByFSA(ctx context.Context, fsa string) (*entities.DeliveryZone, error)
	GetAllActive(ctx context.Context) ([]entities.DeliveryZone, error)
}

type OrderCounter interface {
	CountForSlot(ctx context.Context, zoneID int64, deliveryDate time.Time) (int64, error)
}

type ScheduleFactory interface {
	SlotFor(day entities.DeliveryDay, now time.Time) entities.DeliverySlot
	IsPastCutoff(cutoff, now time.Time) bool
}
