package menu

import (
	"context"
	"time"

	"fitbox/internal/entities"
)

type Service struct {
	repository Repository
	loc        *time.Location
	now        func() time.Time
}

func New(repository Repository, loc *time.Location, now func() time.Time) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		repository: repository,
		loc:        loc,
		now:        now,
	}
}

// GetCurrentMenu возвращает меню текущей недели. Неделя начинается
// с понедельника локального времени зоны доставки.
func (s *Service) GetCurrentMenu(ctx context.Context) ([]entities.MenuItem, error) {
	return s.repository.GetActiveForWeek(ctx, s.currentWeekStart())
}

func (s *Service) GetActiveItems(ctx context.Context, ids []int64) ([]entities.MenuItem, error) {
	return s.repository.GetActiveByIDs(ctx, ids)
}

func (s *Service) currentWeekStart() time.Time {
	now := s.now().In(s.loc)

	// time.Weekday: воскресенье = 0, понедельник = 1
	offset := (int(now.Weekday()) - int(time.Monday) + 7) % 7
	monday := now.AddDate(0, 0, -offset)

	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}
