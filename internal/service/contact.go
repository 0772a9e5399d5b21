package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ContactService определяет контракт для управления доверенными контактами
type ContactService interface {
	AddContact(ctx context.Context, profileID uuid.UUID, contact *models.Contact) error
	UpdateContact(ctx context.Context, profileID, contactID uuid.UUID, patch models.ContactPatch) error
	RemoveContact(ctx context.Context, profileID, contactID uuid.UUID) error
	SetEmergencyFlag(ctx context.Context, profileID, contactID uuid.UUID, isEmergency bool) error
	ListContacts(ctx context.Context, profileID uuid.UUID) ([]*models.Contact, error)
}

type contactService struct {
	repo   ProfileRepository
	logger *logrus.Logger
}

func NewContactService(repo ProfileRepository, logger *logrus.Logger) ContactService {
	return &contactService{
		repo:   repo,
		logger: logger,
	}
}

// AddContact добавляет контакт, id присваивает бд
func (s *contactService) AddContact(ctx context.Context, profileID uuid.UUID, contact *models.Contact) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "contact",
		"method":     "AddContact",
		"profile_id": profileID,
	})
	log.Info("Attempting to add a new contact")

	if strings.TrimSpace(contact.Name) == "" {
		log.Warn("Contact name is empty")
		return fmt.Errorf("service: %w", ErrNameRequired)
	}
	if strings.TrimSpace(contact.PhoneNumber) == "" {
		log.Warn("Contact phone number is empty")
		return fmt.Errorf("service: %w", ErrPhoneRequired)
	}

	if err := s.repo.CreateContact(ctx, profileID, contact); err != nil {
		log.WithError(err).Error("Failed to create contact in repository")
		return fmt.Errorf("service: could not create contact: %w", err)
	}

	if err := s.repo.InvalidateContactsCache(ctx, profileID); err != nil {
		log.WithError(err).Debug("Failed to invalidate contacts cache")
	}

	log.WithField("contact_id", contact.ID).Info("Contact added successfully")
	return nil
}

// UpdateContact частично обновляет контакт: nil-поля не трогаются
func (s *contactService) UpdateContact(ctx context.Context, profileID, contactID uuid.UUID, patch models.ContactPatch) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "contact",
		"method":     "UpdateContact",
		"contact_id": contactID,
	})
	log.Info("Attempting to update contact")

	existing, err := s.repo.GetContact(ctx, profileID, contactID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent contact")
		return fmt.Errorf("service: contact %s not found for update: %w", contactID, err)
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return fmt.Errorf("service: %w", ErrNameRequired)
		}
		existing.Name = *patch.Name
	}
	if patch.PhoneNumber != nil {
		if strings.TrimSpace(*patch.PhoneNumber) == "" {
			return fmt.Errorf("service: %w", ErrPhoneRequired)
		}
		existing.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}
	if patch.WalletAddress != nil {
		existing.WalletAddress = *patch.WalletAddress
	}
	if patch.IsEmergencyContact != nil {
		existing.IsEmergencyContact = *patch.IsEmergencyContact
	}

	if err := s.repo.UpdateContact(ctx, profileID, existing); err != nil {
		log.WithError(err).Error("Failed to update contact in repository")
		return fmt.Errorf("service: could not update contact: %w", err)
	}

	if err := s.repo.InvalidateContactsCache(ctx, profileID); err != nil {
		log.WithError(err).Debug("Failed to invalidate contacts cache")
	}

	log.Info("Contact updated successfully")
	return nil
}

// RemoveContact удаляет контакт. Отсутствующий id не является ошибкой.
// Снимки responded_by в истории тревог при этом не меняются.
func (s *contactService) RemoveContact(ctx context.Context, profileID, contactID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "contact",
		"method":     "RemoveContact",
		"contact_id": contactID,
	})
	log.Info("Attempting to remove contact")

	if err := s.repo.DeleteContact(ctx, profileID, contactID); err != nil {
		log.WithError(err).Error("Failed to remove contact in repository")
		return fmt.Errorf("service: could not remove contact: %w", err)
	}

	if err := s.repo.InvalidateContactsCache(ctx, profileID); err != nil {
		log.WithError(err).Debug("Failed to invalidate contacts cache")
	}

	log.Info("Contact removed successfully")
	return nil
}

// SetEmergencyFlag явно переключает участие контакта в экстренной рассылке
func (s *contactService) SetEmergencyFlag(ctx context.Context, profileID, contactID uuid.UUID, isEmergency bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "contact",
		"method":       "SetEmergencyFlag",
		"contact_id":   contactID,
		"is_emergency": isEmergency,
	})
	log.Info("Toggling emergency flag")

	existing, err := s.repo.GetContact(ctx, profileID, contactID)
	if err != nil {
		log.WithError(err).Warn("Attempted to toggle a non-existent contact")
		return fmt.Errorf("service: contact %s not found for toggle: %w", contactID, err)
	}

	existing.IsEmergencyContact = isEmergency
	if err := s.repo.UpdateContact(ctx, profileID, existing); err != nil {
		log.WithError(err).Error("Failed to update contact in repository")
		return fmt.Errorf("service: could not toggle emergency flag: %w", err)
	}

	if err := s.repo.InvalidateContactsCache(ctx, profileID); err != nil {
		log.WithError(err).Debug("Failed to invalidate contacts cache")
	}

	log.Info("Emergency flag updated successfully")
	return nil
}

// ListContacts возвращает контакты профиля в порядке добавления
func (s *contactService) ListContacts(ctx context.Context, profileID uuid.UUID) ([]*models.Contact, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "contact",
		"method":     "ListContacts",
		"profile_id": profileID,
	})

	contacts, err := s.repo.ListContacts(ctx, profileID)
	if err != nil {
		log.WithError(err).Error("Failed to list contacts from repository")
		return nil, fmt.Errorf("service: could not list contacts: %w", err)
	}

	log.WithField("count", len(contacts)).Info("Contacts listed successfully")
	return contacts, nil
}
