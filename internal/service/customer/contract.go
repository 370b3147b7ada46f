//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"fitbox/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, email string, passwordHash []byte) (*entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entities.Customer, error)
}
