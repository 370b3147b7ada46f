package order

import "time"

type OrderDB struct {
	ID           string
	CustomerID   int64
	ZoneID       int64
	PostalCode   string
	DeliveryDay  string
	DeliveryDate time.Time
	DeliveryFee  float64
	Subtotal     float64
	Total        float64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderItemDB struct {
	MenuItemID int64
	Name       string
	Quantity   int64
	UnitPrice  float64
}
