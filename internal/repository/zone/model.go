package zone

import "time"

type ZoneDB struct {
	ID               int64
	Name             string
	FSAPrefixes      []string
	DeliveryFee      float64
	DeliveryDays     []string
	Active           bool
	MaxOrdersPerSlot *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
