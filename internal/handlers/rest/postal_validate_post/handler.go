package postal_validate_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var request dto.PostalCodeValidateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Check(r.Context(), request.PostalCode)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidPostalCode):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("postal code validation failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PostalCodeValidateResponse{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
