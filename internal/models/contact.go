package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact представляет доверенный контакт пользователя
type Contact struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	PhoneNumber        string    `json:"phone_number"`
	Email              string    `json:"email"`
	WalletAddress      string    `json:"wallet_address,omitempty"`
	IsEmergencyContact bool      `json:"is_emergency_contact"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ContactPatch описывает частичное обновление контакта.
// nil-поля не изменяются.
type ContactPatch struct {
	Name               *string
	PhoneNumber        *string
	Email              *string
	WalletAddress      *string
	IsEmergencyContact *bool
}
