package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus - статус SOS-тревоги
type AlertStatus string

const (
	AlertStatusActive     AlertStatus = "active"
	AlertStatusResolved   AlertStatus = "resolved"
	AlertStatusFalseAlarm AlertStatus = "false_alarm"
)

// IsTerminal возвращает true, если статус финальный
func (s AlertStatus) IsTerminal() bool {
	return s == AlertStatusResolved || s == AlertStatusFalseAlarm
}

// Valid проверяет, что статус один из допустимых
func (s AlertStatus) Valid() bool {
	return s == AlertStatusActive || s.IsTerminal()
}

// GeoLocation - неизменяемая точка местоположения, фиксируется в момент тревоги
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Alert представляет одну запись SOS-тревоги.
// История тревог append-only: записи никогда не удаляются.
type Alert struct {
	ID              uuid.UUID   `json:"id"`
	Timestamp       int64       `json:"timestamp"` // epoch millis, устанавливается один раз
	Location        GeoLocation `json:"location"`
	Status          AlertStatus `json:"status"`
	RespondedBy     []Contact   `json:"responded_by,omitempty"` // снимок контактов, не живая ссылка
	Notes           string      `json:"notes,omitempty"`
	VerificationRef string      `json:"verification_ref,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// DispatchReport - агрегированный итог рассылки уведомлений по одной тревоге
type DispatchReport struct {
	Eligible           int  `json:"eligible"`
	SuccessCount       int  `json:"success_count"`
	FailureCount       int  `json:"failure_count"`
	NoEligibleContacts bool `json:"no_eligible_contacts"`
}
