package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile - корневой агрегат пользователя: владеет контактами и историей тревог
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	PhoneNumber   string    `json:"phone_number"`
	Email         string    `json:"email"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
