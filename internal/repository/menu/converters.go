package menu

import (
	"fitbox/internal/entities"
)

func ToDomain(m *MenuItemDB) *entities.MenuItem {
	if m == nil {
		return nil
	}

	return &entities.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		WeekStart:   m.WeekStart,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToDomainList(models []MenuItemDB) []entities.MenuItem {
	result := make([]entities.MenuItem, 0, len(models))
	for i := range models {
		result = append(result, *ToDomain(&models[i]))
	}
	return result
}
