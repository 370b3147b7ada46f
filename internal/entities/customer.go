package entities

import "time"

type Customer struct {
	ID           int64
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
