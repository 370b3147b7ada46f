package delivery_schedule

import (
	"time"

	"fitbox/internal/entities"
)

// Часы и смещения отсчёта приёма заказов:
// воскресная доставка закрывается во вторник 18:00 (за 5 дней),
// средовая - в субботу 18:00 (за 4 дня). Время локальное для региона доставки.
const (
	cutoffHour = 18

	sundayCutoffOffsetDays    = -5
	wednesdayCutoffOffsetDays = -4
)

// ScheduleFactory считает даты слотов и дедлайны приёма заказов.
// Все методы - чистые функции от (now, location), состояния нет.
type ScheduleFactory struct {
	loc *time.Location
}

func New(loc *time.Location) *ScheduleFactory {
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleFactory{loc: loc}
}

// NextOccurrence возвращает ближайшую дату с нужным днём недели строго после
// сегодняшнего дня. Нулевое смещение трактуется как полная неделя вперёд:
// доставка в день заказа не предлагается никогда.
func (f *ScheduleFactory) NextOccurrence(day entities.DeliveryDay, now time.Time) time.Time {
	local := now.In(f.loc)

	days := (int(day.Weekday()) - int(local.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}

	target := local.AddDate(0, 0, days)
	return time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, f.loc)
}

// CutoffFor возвращает дедлайн приёма заказов для даты доставки.
func (f *ScheduleFactory) CutoffFor(deliveryDate time.Time, day entities.DeliveryDay) time.Time {
	offsetDays := sundayCutoffOffsetDays
	if day == entities.DeliveryWednesday {
		offsetDays = wednesdayCutoffOffsetDays
	}

	cutoffDay := deliveryDate.In(f.loc).AddDate(0, 0, offsetDays)
	return time.Date(cutoffDay.Year(), cutoffDay.Month(), cutoffDay.Day(), cutoffHour, 0, 0, 0, f.loc)
}

func (f *ScheduleFactory) IsPastCutoff(cutoff, now time.Time) bool {
	return now.After(cutoff)
}

// SlotFor собирает полный слот: дата следующей доставки плюс её дедлайн.
func (f *ScheduleFactory) SlotFor(day entities.DeliveryDay, now time.Time) entities.DeliverySlot {
	date := f.NextOccurrence(day, now)
	return entities.DeliverySlot{
		Day:    day,
		Date:   date,
		Cutoff: f.CutoffFor(date, day),
	}
}
