//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_test
package menu

import (
	"context"
	"time"

	"fitbox/internal/entities"
)

type Repository interface {
	GetActiveForWeek(ctx context.Context, weekStart time.Time) ([]entities.MenuItem, error)
	GetActiveByIDs(ctx context.Context, ids []int64) ([]entities.MenuItem, error)
}
