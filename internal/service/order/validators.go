package order

import (
	"fitbox/internal/entities"
)

func isValidCheckoutItems(items []entities.CheckoutItem) bool {
	if len(items) == 0 {
		return false
	}

	for _, item := range items {
		if item.MenuItemID <= 0 || item.Quantity <= 0 {
			return false
		}
	}
	return true
}
