package zones_get

import (
	"encoding/json"
	"net/http"

	"fitbox/internal/generated/dto"
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
	zones, err := h.service.ActiveZones(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list delivery zones")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ZonesResponse{
		Zones: make([]dto.Zone, 0, len(zones)),
	}
	for _, zone := range zones {
		days := make([]string, 0, len(zone.DeliveryDays))
		for _, day := range zone.DeliveryDays {
			days = append(days, day.String())
		}

		response.Zones = append(response.Zones, dto.Zone{
			ID:           zone.ID,
			Name:         zone.Name,
			FsaPrefixes:  zone.FSAPrefixes,
			DeliveryFee:  zone.DeliveryFee,
			DeliveryDays: days,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
