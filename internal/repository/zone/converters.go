package zone

import (
	"fitbox/internal/entities"
)

func ToDomain(z *ZoneDB) *entities.DeliveryZone {
	if z == nil {
		return nil
	}

	days := make([]entities.DeliveryDay, 0, len(z.DeliveryDays))
	for _, d := range z.DeliveryDays {
		days = append(days, entities.DeliveryDay(d))
	}

	return &entities.DeliveryZone{
		ID:               z.ID,
		Name:             z.Name,
		FSAPrefixes:      z.FSAPrefixes,
		DeliveryFee:      z.DeliveryFee,
		DeliveryDays:     days,
		Active:           z.Active,
		MaxOrdersPerSlot: z.MaxOrdersPerSlot,
		CreatedAt:        z.CreatedAt,
		UpdatedAt:        z.UpdatedAt,
	}
}

func ToDomainList(zonesDB []ZoneDB) []entities.DeliveryZone {
	if len(zonesDB) == 0 {
		return []entities.DeliveryZone{}
	}

	result := make([]entities.DeliveryZone, len(zonesDB))
	for i, zoneDB := range zonesDB {
		result[i] = *ToDomain(&zoneDB)
	}
	return result
}
