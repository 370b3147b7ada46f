package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitbox/internal/entities"
	"fitbox/internal/pkg/postalcode"
)

type Availability struct {
	registry ZoneRegistry
	counter  OrderCounter
	schedule ScheduleFactory
	now      func() time.Time
}

func New(
	registry ZoneRegistry,
	counter OrderCounter,
	schedule ScheduleFactory,
	now func() time.Time,
) *Availability {
	if now == nil {
		now = time.Now
	}
	return &Availability{
		registry: registry,
		counter:  counter,
		schedule: schedule,
		now:      now,
	}
}

// ActiveZones возвращает зоны для витрины "куда мы возим".
func (s *Availability) ActiveZones(ctx context.Context) ([]entities.DeliveryZone, error) {
	zones, err := s.registry.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	return zones, nil
}

// Check отвечает на вопрос "возим ли мы по этому индексу и когда".
// Ответ всегда целиком: либо полный результат, либо ошибка.
// Необслуживаемый индекс - не ошибка, а результат с Serviceable=false.
func (s *Availability) Check(ctx context.Context, rawPostalCode string) (*entities.Availability, error) {
	code, err := postalcode.Normalize(rawPostalCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPostalCode, rawPostalCode)
	}

	zone, err := s.registry.GetActiveByFSA(ctx, postalcode.FSA(code))
	if err != nil {
		if errors.Is(err, ErrZoneNotFound) {
			return &entities.Availability{
				PostalCode:  code,
				Serviceable: false,
			}, nil
		}
		return nil, fmt.Errorf("zone lookup: %w", err)
	}

	now := s.now()

	slots := make([]entities.SlotAvailability, 0, len(entities.AllDeliveryDays))
	for _, day := range entities.AllDeliveryDays {
		slot := s.schedule.SlotFor(day, now)

		offered := zone.DeliversOn(day)
		pastCutoff := s.schedule.IsPastCutoff(slot.Cutoff, now)

		slotAvailability := entities.SlotAvailability{
			Slot:       slot,
			Offered:    offered,
			PastCutoff: pastCutoff,
			Available:  offered && !pastCutoff,
		}

		if offered && zone.MaxOrdersPerSlot != nil {
			count, err := s.counter.CountForSlot(ctx, zone.ID, slot.Date)
			if err != nil {
				return nil, fmt.Errorf("slot order count: %w", err)
			}

			remaining := *zone.MaxOrdersPerSlot - count
			if remaining < 0 {
				remaining = 0
			}
			slotAvailability.Remaining = &remaining
		}

		slots = append(slots, slotAvailability)
	}

	return &entities.Availability{
		PostalCode:  code,
		Serviceable: true,
		Zone:        zone,
		Slots:       slots,
	}, nil
}
