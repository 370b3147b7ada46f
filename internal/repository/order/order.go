package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fitbox/internal/entities"
	"fitbox/internal/repository"
	"fitbox/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = "id, customer_id, zone_id, postal_code, delivery_day, delivery_date, delivery_fee, subtotal, total, status, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет заказ вместе с позициями. Атомарность обеспечивает
// вызывающий: сервис оборачивает Create в транзакцию вместе с
// проверкой вместимости слота.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (id, customer_id, zone_id, postal_code, delivery_day, delivery_date, delivery_fee, subtotal, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.CustomerID,
		orderEntity.ZoneID,
		orderEntity.PostalCode,
		orderEntity.DeliveryDay.String(),
		orderEntity.DeliveryDate,
		orderEntity.DeliveryFee,
		orderEntity.Subtotal,
		orderEntity.Total,
		orderEntity.Status.String(),
	).Scan(
		&orderDB.ID,
		&orderDB.CustomerID,
		&orderDB.ZoneID,
		&orderDB.PostalCode,
		&orderDB.DeliveryDay,
		&orderDB.DeliveryDate,
		&orderDB.DeliveryFee,
		&orderDB.Subtotal,
		&orderDB.Total,
		&orderDB.Status,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrOrderExists
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	if len(orderEntity.Items) > 0 {
		builder := qb.
			Insert("order_items").
			Columns("order_id", "menu_item_id", "name", "quantity", "unit_price")
		for _, item := range orderEntity.Items {
			builder = builder.Values(orderDB.ID, item.MenuItemID, item.Name, item.Quantity, item.UnitPrice)
		}

		itemsQuery, args, err := builder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
		}

		_, err = r.querier.Exec(ctx, itemsQuery, args...)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
		}
	}

	items := make([]OrderItemDB, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, OrderItemDB{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	return ToDomain(&orderDB, items), nil
}

// CountForSlot считает занятые места слота. Отменённые заказы место
// не держат, остальные статусы - держат.
func (r *Repository) CountForSlot(ctx context.Context, zoneID int64, deliveryDate time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE zone_id = $1
		  AND delivery_date = $2
		  AND status != 'cancelled'
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, zoneID, deliveryDate).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count for slot error: %w", err)
	}

	return count, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&orderDB.ID,
		&orderDB.CustomerID,
		&orderDB.ZoneID,
		&orderDB.PostalCode,
		&orderDB.DeliveryDay,
		&orderDB.DeliveryDate,
		&orderDB.DeliveryFee,
		&orderDB.Subtotal,
		&orderDB.Total,
		&orderDB.Status,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.getItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

func (r *Repository) GetByCustomer(ctx context.Context, customerID int64) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.querier.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbycustomer error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.CustomerID,
			&orderDB.ZoneID,
			&orderDB.PostalCode,
			&orderDB.DeliveryDay,
			&orderDB.DeliveryDate,
			&orderDB.DeliveryFee,
			&orderDB.Subtotal,
			&orderDB.Total,
			&orderDB.Status,
			&orderDB.CreatedAt,
			&orderDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getbycustomer error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbycustomer error: %w", err)
	}

	if len(orderModels) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, 0, len(orderModels))
	for _, orderDB := range orderModels {
		ids = append(ids, orderDB.ID)
	}

	itemsByOrder, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orderModels))
	for i := range orderModels {
		result = append(result, *ToDomain(&orderModels[i], itemsByOrder[orderModels[i].ID]))
	}

	return result, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderDB.ID,
		&orderDB.CustomerID,
		&orderDB.ZoneID,
		&orderDB.PostalCode,
		&orderDB.DeliveryDay,
		&orderDB.DeliveryDate,
		&orderDB.DeliveryFee,
		&orderDB.Subtotal,
		&orderDB.Total,
		&orderDB.Status,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	items, err := r.getItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

// CancelPendingCreatedBefore отменяет заказы, зависшие в ожидании
// оплаты дольше отведённого окна. Возвращает число отменённых.
func (r *Repository) CancelPendingCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE orders
		SET status = 'cancelled',
		    updated_at = NOW()
		WHERE status = 'pending_payment'
		  AND created_at < $1
	`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository cancel pending error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) getItems(ctx context.Context, orderIDs []string) (map[string][]OrderItemDB, error) {
	query := `
		SELECT order_id, menu_item_id, name, quantity, unit_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	itemsByOrder := make(map[string][]OrderItemDB, len(orderIDs))
	for rows.Next() {
		var orderID string
		var itemDB OrderItemDB
		err := rows.Scan(
			&orderID,
			&itemDB.MenuItemID,
			&itemDB.Name,
			&itemDB.Quantity,
			&itemDB.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	return itemsByOrder, nil
}
