package orders_get

import (
	"encoding/json"
	"net/http"
	"time"

	"fitbox/internal/entities"
	"fitbox/internal/generated/dto"
	"fitbox/internal/pkg/middlewares/auth"
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

	orders, err := h.service.ListOrders(r.Context(), customerID)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("customer", customerID),
		).Error("list orders")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.OrdersResponse{
		Orders: make([]dto.Order, 0, len(orders)),
	}
	for i := range orders {
		response.Orders = append(response.Orders, toOrderDTO(&orders[i]))
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
