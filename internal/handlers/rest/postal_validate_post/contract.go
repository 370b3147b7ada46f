//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=postal_validate_post_test
package postal_validate_post

import (
	"context"

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
	Check(ctx context.Context, rawPostalCode string) (*entities.Availability, error)
}
