package customer

import "time"

type CustomerDB struct {
	ID           int64
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
