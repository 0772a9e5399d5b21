package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterProfileRequest DTO для регистрации профиля
// @Description DTO для регистрации профиля
type RegisterProfileRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=255"`
	PhoneNumber   string `json:"phone_number" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	WalletAddress string `json:"wallet_address,omitempty"`
}

// ProfileResponse DTO для ответа с информацией о профиле
// @Description DTO для ответа с информацией о профиле
type ProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	PhoneNumber   string    `json:"phone_number"`
	Email         string    `json:"email"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateContactRequest DTO для добавления контакта
// @Description DTO для добавления контакта
type CreateContactRequest struct {
	Name               string `json:"name" validate:"required,min=2,max=255"`
	PhoneNumber        string `json:"phone_number" validate:"required"`
	Email              string `json:"email" validate:"omitempty,email"`
	WalletAddress      string `json:"wallet_address,omitempty"`
	IsEmergencyContact bool   `json:"is_emergency_contact"`
}

// UpdateContactRequest DTO для частичного обновления контакта.
// nil-поля не изменяются.
// @Description DTO для частичного обновления контакта
type UpdateContactRequest struct {
	Name               *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	PhoneNumber        *string `json:"phone_number,omitempty" validate:"omitempty,min=1"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email"`
	WalletAddress      *string `json:"wallet_address,omitempty"`
	IsEmergencyContact *bool   `json:"is_emergency_contact,omitempty"`
}

// SetEmergencyFlagRequest DTO для переключения флага экстренного контакта
// @Description DTO для переключения флага экстренного контакта
type SetEmergencyFlagRequest struct {
	IsEmergencyContact *bool `json:"is_emergency_contact" validate:"required"`
}

// ContactResponse DTO для ответа с информацией о контакте
// @Description DTO для ответа с информацией о контакте
type ContactResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	PhoneNumber        string    `json:"phone_number"`
	Email              string    `json:"email,omitempty"`
	WalletAddress      string    `json:"wallet_address,omitempty"`
	IsEmergencyContact bool      `json:"is_emergency_contact"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// LocationResponse DTO с координатами тревоги
// @Description DTO с координатами тревоги
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID              uuid.UUID         `json:"id"`
	Timestamp       int64             `json:"timestamp"`
	Location        LocationResponse  `json:"location"`
	Status          string            `json:"status"`
	RespondedBy     []ContactResponse `json:"responded_by,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	VerificationRef string            `json:"verification_ref,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// DispatchReportResponse DTO с итогом рассылки уведомлений
// @Description DTO с итогом рассылки уведомлений
type DispatchReportResponse struct {
	Eligible           int  `json:"eligible"`
	SuccessCount       int  `json:"success_count"`
	FailureCount       int  `json:"failure_count"`
	NoEligibleContacts bool `json:"no_eligible_contacts"`
}

// TriggerSOSResponse DTO для ответа на срабатывание SOS
// @Description DTO для ответа на срабатывание SOS
type TriggerSOSResponse struct {
	Alert    AlertResponse          `json:"alert"`
	Dispatch DispatchReportResponse `json:"dispatch"`
}

// ResolveAlertRequest DTO для разрешения тревоги
// @Description DTO для разрешения тревоги
type ResolveAlertRequest struct {
	Notes       *string    `json:"notes,omitempty"`
	RespondedBy *uuid.UUID `json:"responded_by,omitempty"`
}

// FalseAlarmRequest DTO для отметки ложной тревоги
// @Description DTO для отметки ложной тревоги
type FalseAlarmRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// StartCountdownRequest DTO для запуска отсчета перед SOS
// @Description DTO для запуска отсчета перед SOS
type StartCountdownRequest struct {
	Seconds int `json:"seconds" validate:"omitempty,gt=0,lte=300"`
}

// CountdownResponse DTO со статусом отсчета
// @Description DTO со статусом отсчета
type CountdownResponse struct {
	Pending bool   `json:"pending"`
	Seconds int    `json:"seconds,omitempty"`
	Message string `json:"message,omitempty"`
}
