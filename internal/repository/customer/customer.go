package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fitbox/internal/entities"
	"fitbox/internal/repository"
	"fitbox/internal/service/customer"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, email string, passwordHash []byte) (*entities.Customer, error) {
	query := `
		INSERT INTO customers (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at
	`

	var customerDB CustomerDB
	err := r.querier.QueryRow(ctx, query, email, passwordHash).Scan(
		&customerDB.ID,
		&customerDB.Email,
		&customerDB.PasswordHash,
		&customerDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, customer.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return ToDomain(&customerDB), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM customers
		WHERE email = $1
	`

	var customerDB CustomerDB
	err := r.querier.QueryRow(ctx, query, email).Scan(
		&customerDB.ID,
		&customerDB.Email,
		&customerDB.PasswordHash,
		&customerDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("unexpected customer repository getbyemail error: %w", err)
	}

	return ToDomain(&customerDB), nil
}
