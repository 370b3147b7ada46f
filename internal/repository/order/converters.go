package order

import (
	"fitbox/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		ZoneID:       o.ZoneID,
		PostalCode:   o.PostalCode,
		DeliveryDay:  entities.DeliveryDay(o.DeliveryDay),
		DeliveryDate: o.DeliveryDate,
		DeliveryFee:  o.DeliveryFee,
		Items:        ToItemDomainList(items),
		Subtotal:     o.Subtotal,
		Total:        o.Total,
		Status:       entities.OrderStatusType(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func ToItemDomain(i *OrderItemDB) entities.OrderItem {
	return entities.OrderItem{
		MenuItemID: i.MenuItemID,
		Name:       i.Name,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
	}
}

func ToItemDomainList(items []OrderItemDB) []entities.OrderItem {
	if items == nil {
		return nil
	}

	result := make([]entities.OrderItem, 0, len(items))
	for i := range items {
		result = append(result, ToItemDomain(&items[i]))
	}
	return result
}
