package menu

import "time"

type MenuItemDB struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	WeekStart   time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
