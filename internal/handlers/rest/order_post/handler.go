package order_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fitbox/internal/entities"
	"fitbox/internal/generated/dto"
	"fitbox/internal/pkg/middlewares/auth"
	"fitbox/internal/service/availability"
	"fitbox/internal/service/order"
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
	customerID, ok := auth.GetCustomerIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var request dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.CheckoutItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, entities.CheckoutItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	orderEntity, err := h.service.Checkout(
		r.Context(),
		customerID,
		request.PostalCode,
		entities.DeliveryDay(request.DeliveryDay),
		items,
	)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyOrder),
			errors.Is(err, order.ErrUnknownMenuItem),
			errors.Is(err, availability.ErrInvalidPostalCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrNotServiceable):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, order.ErrSlotUnavailable),
			errors.Is(err, order.ErrSlotFull):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, order.ErrPaymentDeclined):
			w.WriteHeader(http.StatusPaymentRequired)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("customer", customerID),
			).Error("checkout failed")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	items := make([]dto.OrderItem, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, dto.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	return dto.Order{
		ID:           orderEntity.ID,
		PostalCode:   orderEntity.PostalCode,
		DeliveryDay:  orderEntity.DeliveryDay.String(),
		DeliveryDate: orderEntity.DeliveryDate.Format(time.DateOnly),
		DeliveryFee:  orderEntity.DeliveryFee,
		Items:        items,
		Subtotal:     orderEntity.Subtotal,
		Total:        orderEntity.Total,
		Status:       orderEntity.Status.String(),
		CreatedAt:    orderEntity.CreatedAt.Format(time.RFC3339),
	}
}
