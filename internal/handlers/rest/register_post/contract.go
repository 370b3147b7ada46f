package register_post

import (
	"context"
	"net/http"

	"fitbox/internal/entities"
	"fitbox/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Register(ctx context.Context, email, password string) (*entities.Customer, error)
}

type CookieIssuer interface {
	SetAuthCookie(w http.ResponseWriter, customerID int64)
}
