package availability

import "errors"

var (
	// ErrInvalidPostalCode - ввод не похож на канадский почтовый индекс.
	// Отличать от "индекс валиден, но мы туда не возим": то не ошибка вовсе.
	ErrInvalidPostalCode = errors.New("invalid postal code")

	ErrZoneNotFound = errors.New("delivery zone not found")
)
