package entities

import "time"

// MenuItem - блюдо недельного меню. Меню ротируется по неделям:
// WeekStart - понедельник недели, на которой позиция доступна.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	WeekStart   time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
