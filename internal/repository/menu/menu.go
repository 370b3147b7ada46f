package menu

import (
	"context"
	"fmt"
	"time"

	"fitbox/internal/entities"
)

const menuColumns = "id, name, description, price, week_start, active, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetActiveForWeek возвращает меню недели. weekStart - понедельник,
// нормализацию даты делает сервис.
func (r *Repository) GetActiveForWeek(ctx context.Context, weekStart time.Time) ([]entities.MenuItem, error) {
	query := `
		SELECT ` + menuColumns + `
		FROM menu_items
		WHERE week_start = $1
		  AND active = true
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, weekStart)
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository get for week error: %w", err)
	}
	defer rows.Close()

	menuModels := make([]MenuItemDB, 0, 16)
	for rows.Next() {
		var menuItemDB MenuItemDB
		err := rows.Scan(
			&menuItemDB.ID,
			&menuItemDB.Name,
			&menuItemDB.Description,
			&menuItemDB.Price,
			&menuItemDB.WeekStart,
			&menuItemDB.Active,
			&menuItemDB.CreatedAt,
			&menuItemDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected menu repository get for week error: %w", err)
		}
		menuModels = append(menuModels, menuItemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository get for week error: %w", err)
	}

	return ToDomainList(menuModels), nil
}

// GetActiveByIDs отдаёт только активные позиции: снятое с продажи
// блюдо в корзине равносильно неизвестному.
func (r *Repository) GetActiveByIDs(ctx context.Context, ids []int64) ([]entities.MenuItem, error) {
	query := `
		SELECT ` + menuColumns + `
		FROM menu_items
		WHERE id = ANY($1)
		  AND active = true
	`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository get by ids error: %w", err)
	}
	defer rows.Close()

	menuModels := make([]MenuItemDB, 0, len(ids))
	for rows.Next() {
		var menuItemDB MenuItemDB
		err := rows.Scan(
			&menuItemDB.ID,
			&menuItemDB.Name,
			&menuItemDB.Description,
			&menuItemDB.Price,
			&menuItemDB.WeekStart,
			&menuItemDB.Active,
			&menuItemDB.CreatedAt,
			&menuItemDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected menu repository get by ids error: %w", err)
		}
		menuModels = append(menuModels, menuItemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository get by ids error: %w", err)
	}

	return ToDomainList(menuModels), nil
}
