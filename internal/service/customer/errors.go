package customer

import "errors"

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidEmail = errors.New("invalid email")
	ErrWeakPassword = errors.New("password too short")

	// ErrInvalidCredentials - одна ошибка и на неизвестный email,
	// и на неверный пароль, чтобы не подсвечивать существующие аккаунты.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
