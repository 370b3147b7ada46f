package menu_get

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
	items, err := h.service.GetCurrentMenu(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get current menu")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.MenuResponse{
		Items: make([]dto.MenuItem, 0, len(items)),
	}
	for _, item := range items {
		response.Items = append(response.Items, dto.MenuItem{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
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
