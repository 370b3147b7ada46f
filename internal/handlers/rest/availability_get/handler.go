package availability_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fitbox/internal/entities"
	"fitbox/internal/generated/dto"
	"fitbox/internal/service/availability"
	"fitbox/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rawPostalCode := r.URL.Query().Get("postal_code")
	if rawPostalCode == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Check(r.Context(), rawPostalCode)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidPostalCode):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("postal_code", rawPostalCode),
			).Error("availability check failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toResponse(result)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toResponse(result *entities.Availability) dto.AvailabilityResponse {
	response := dto.AvailabilityResponse{
		PostalCode:  result.PostalCode,
		Serviceable: result.Serviceable,
	}

	if result.Zone != nil {
		response.Zone = &dto.ZoneSummary{
			ID:          result.Zone.ID,
			Name:        result.Zone.Name,
			DeliveryFee: result.Zone.DeliveryFee,
		}
	}

	if len(result.Slots) > 0 {
		slots := make([]dto.DeliverySlot, 0, len(result.Slots))
		for _, slot := range result.Slots {
			slots = append(slots, dto.DeliverySlot{
				Day:        slot.Slot.Day.String(),
				Date:       slot.Slot.Date.Format(time.DateOnly),
				CutoffAt:   slot.Slot.Cutoff.Format(time.RFC3339),
				Offered:    slot.Offered,
				PastCutoff: slot.PastCutoff,
				Available:  slot.Available,
				Remaining:  slot.Remaining,
			})
		}
		response.Slots = slots
	}

	return response
}
