package entities

import (
	"time"
)

type DeliveryDay string

const (
	DeliverySunday    DeliveryDay = "sunday"
	DeliveryWednesday DeliveryDay = "wednesday"
)

// AllDeliveryDays - все слоты доставки в порядке выдачи наружу.
var AllDeliveryDays = []DeliveryDay{DeliverySunday, DeliveryWednesday}

func (d DeliveryDay) String() string {
	return string(d)
}

func (d DeliveryDay) Weekday() time.Weekday {
	switch d {
	case DeliverySunday:
		return time.Sunday
	case DeliveryWednesday:
		return time.Wednesday
	default:
		return time.Sunday
	}
}

func (d DeliveryDay) Valid() bool {
	switch d {
	case DeliverySunday, DeliveryWednesday:
		return true
	default:
		return false
	}
}

// DeliveryZone - зона обслуживания, администрируется извне, сервис её только читает.
type DeliveryZone struct {
	ID               int64
	Name             string
	FSAPrefixes      []string
	DeliveryFee      float64
	DeliveryDays     []DeliveryDay
	Active           bool
	MaxOrdersPerSlot *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (z *DeliveryZone) DeliversOn(day DeliveryDay) bool {
	for _, d := range z.DeliveryDays {
		if d == day {
			return true
		}
	}
	return false
}
