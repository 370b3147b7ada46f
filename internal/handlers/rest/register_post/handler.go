package register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fitbox/internal/generated/dto"
	"fitbox/internal/service/customer"
	"fitbox/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	cookies CookieIssuer
}

func New(log handlerLogger, service Service, cookies CookieIssuer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		cookies: cookies,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	customerEntity, err := h.service.Register(r.Context(), request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrInvalidEmail),
			errors.Is(err, customer.ErrWeakPassword):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, customer.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("register customer")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.cookies.SetAuthCookie(w, customerEntity.ID)

	response := dto.CustomerResponse{
		ID:    customerEntity.ID,
		Email: customerEntity.Email,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
