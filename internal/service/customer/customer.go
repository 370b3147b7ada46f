package customer

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"strings"

	"fitbox/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (*entities.Customer, error) {
	email = normalizeEmail(email)

	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(password) {
		return nil, ErrWeakPassword
	}

	customerEntity, err := s.repository.Create(ctx, email, hashPassword(email, password))
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return customerEntity, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*entities.Customer, error) {
	email = normalizeEmail(email)

	customerEntity, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	if !hmac.Equal(hashPassword(email, password), customerEntity.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return customerEntity, nil
}

// hashPassword солит хэш самим email: одинаковые пароли разных
// покупателей дают разные хэши.
func hashPassword(email, password string) []byte {
	sum := sha256.Sum256([]byte(email + ":" + password))
	return sum[:]
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
