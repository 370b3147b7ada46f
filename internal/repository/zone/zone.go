package zone

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fitbox/internal/entities"
	"fitbox/internal/service/availability"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const zoneColumns = "id, name, fsa_prefixes, delivery_fee, delivery_days, active, max_orders_per_slot, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetActiveByFSA возвращает активную зону, покрывающую данный FSA.
// Инвариант данных - не больше одной активной зоны на FSA; на случай
// пересечения берём детерминированно первую по id.
func (r *Repository) GetActiveByFSA(ctx context.Context, fsa string) (*entities.DeliveryZone, error) {
	builder := qb.
		Select(zoneColumns).
		From("delivery_zones").
		Where(sq.Eq{"active": true}).
		Where(sq.Expr("? = ANY(fsa_prefixes)", fsa)).
		OrderBy("id ASC").
		Limit(1)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository get by fsa error: %w", err)
	}

	var zoneDB ZoneDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&zoneDB.ID,
		&zoneDB.Name,
		&zoneDB.FSAPrefixes,
		&zoneDB.DeliveryFee,
		&zoneDB.DeliveryDays,
		&zoneDB.Active,
		&zoneDB.MaxOrdersPerSlot,
		&zoneDB.CreatedAt,
		&zoneDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, availability.ErrZoneNotFound
		}
		return nil, fmt.Errorf("unexpected zone repository get by fsa error: %w", err)
	}

	return ToDomain(&zoneDB), nil
}

func (r *Repository) GetAllActive(ctx context.Context) ([]entities.DeliveryZone, error) {
	query := `
	SELECT ` + zoneColumns + `
	FROM delivery_zones
	WHERE active
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository getall error: %w", err)
	}
	defer rows.Close()

	zoneModels := make([]ZoneDB, 0, 8)
	for rows.Next() {
		var zoneDB ZoneDB
		err := rows.Scan(
			&zoneDB.ID,
			&zoneDB.Name,
			&zoneDB.FSAPrefixes,
			&zoneDB.DeliveryFee,
			&zoneDB.DeliveryDays,
			&zoneDB.Active,
			&zoneDB.MaxOrdersPerSlot,
			&zoneDB.CreatedAt,
			&zoneDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected zone repository getall error: %w", err)
		}
		zoneModels = append(zoneModels, zoneDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository getall error: %w", err)
	}

	return ToDomainList(zoneModels), nil
}
