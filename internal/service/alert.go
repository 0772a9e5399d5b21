package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ProfileRepository определяет контракт для работы с бд профилей, контактов и тревог
type ProfileRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error

	CreateContact(ctx context.Context, profileID uuid.UUID, contact *models.Contact) error
	GetContact(ctx context.Context, profileID, contactID uuid.UUID) (*models.Contact, error)
	UpdateContact(ctx context.Context, profileID uuid.UUID, contact *models.Contact) error
	DeleteContact(ctx context.Context, profileID, contactID uuid.UUID) error
	ListContacts(ctx context.Context, profileID uuid.UUID) ([]*models.Contact, error)

	CreateAlert(ctx context.Context, profileID uuid.UUID, alert *models.Alert) error
	GetAlert(ctx context.Context, profileID, alertID uuid.UUID) (*models.Alert, error)
	UpdateAlertOutcome(ctx context.Context, profileID uuid.UUID, alert *models.Alert) error
	SetVerificationRef(ctx context.Context, profileID, alertID uuid.UUID, ref string) error
	ListAlerts(ctx context.Context, profileID uuid.UUID) ([]*models.Alert, error)
	ListAlertsByStatus(ctx context.Context, profileID uuid.UUID, status models.AlertStatus) ([]*models.Alert, error)

	GetContactsFromCache(ctx context.Context, profileID uuid.UUID) ([]*models.Contact, error)
	SetContactsCache(ctx context.Context, profileID uuid.UUID, contacts []*models.Contact) error
	InvalidateContactsCache(ctx context.Context, profileID uuid.UUID) error
}

// LocationProvider выдает одноразовое чтение координат.
// Одна попытка, без повторов: отказ фатален для триггера.
type LocationProvider interface {
	CurrentPosition(ctx context.Context) (models.GeoLocation, error)
}

// NotificationGateway доставляет одно уведомление одному получателю.
// Вызовы независимы, шлюз не дает гарантий порядка.
type NotificationGateway interface {
	Notify(ctx context.Context, recipient, senderName string, location models.GeoLocation, timestamp int64) error
}

// VerificationAnchor возвращает внешнюю ссылку-подтверждение для тревоги.
// Вызов best-effort: отказ не влияет на результат триггера.
type VerificationAnchor interface {
	Record(ctx context.Context, alert *models.Alert) (string, error)
}

// AlertService определяет контракт для жизненного цикла SOS-тревог
type AlertService interface {
	TriggerSOS(ctx context.Context, profileID uuid.UUID) (*models.Alert, *models.DispatchReport, error)
	Resolve(ctx context.Context, profileID, alertID uuid.UUID, notes *string, responderID *uuid.UUID) error
	MarkFalseAlarm(ctx context.Context, profileID, alertID uuid.UUID, notes *string) error
	ListAlerts(ctx context.Context, profileID uuid.UUID) ([]*models.Alert, error)
	ListAlertsByStatus(ctx context.Context, profileID uuid.UUID, status models.AlertStatus) ([]*models.Alert, error)
}

type alertService struct {
	repo      ProfileRepository
	location  LocationProvider
	gateway   NotificationGateway
	anchor    VerificationAnchor
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewAlertService(
	repo ProfileRepository,
	location LocationProvider,
	gateway NotificationGateway,
	anchor VerificationAnchor,
	publisher webhook.WebhookPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) AlertService {
	return &alertService{
		repo:      repo,
		location:  location,
		gateway:   gateway,
		anchor:    anchor,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// TriggerSOS создает тревогу и рассылает уведомления экстренным контактам.
// Тревога становится видимой читателям сразу после записи в бд,
// до начала рассылки. Отказы уведомлений и якоря не откатывают тревогу.
func (s *alertService) TriggerSOS(ctx context.Context, profileID uuid.UUID) (*models.Alert, *models.DispatchReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "TriggerSOS",
		"profile_id": profileID,
	})
	log.Info("Triggering SOS alert")

	profile, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			log.Warn("Attempted to trigger SOS without a loaded profile")
			return nil, nil, fmt.Errorf("service: %w", ErrNotAuthenticated)
		}
		log.WithError(err).Error("Failed to load profile")
		return nil, nil, fmt.Errorf("service: could not load profile: %w", err)
	}

	// Жесткое предусловие: без координат тревога не создается
	location, err := s.location.CurrentPosition(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to acquire location, aborting SOS trigger")
		return nil, nil, fmt.Errorf("service: %w: %v", ErrLocationUnavailable, err)
	}

	alert := &models.Alert{
		Timestamp: time.Now().UnixMilli(),
		Location:  location,
		Status:    models.AlertStatusActive,
	}

	// Точка долговечности: после этой записи тревога существует,
	// что бы ни случилось с уведомлениями дальше
	if err := s.repo.CreateAlert(ctx, profileID, alert); err != nil {
		log.WithError(err).Error("Failed to persist alert")
		return nil, nil, fmt.Errorf("service: could not persist alert: %w", err)
	}
	log = log.WithField("alert_id", alert.ID)
	log.Info("Alert persisted")

	// Best-effort: неудача якоря не отменяет тревогу
	if ref, err := s.anchor.Record(ctx, alert); err != nil {
		log.WithError(err).Warn("Failed to obtain verification reference")
	} else if err := s.repo.SetVerificationRef(ctx, profileID, alert.ID, ref); err != nil {
		log.WithError(err).Warn("Failed to store verification reference")
	} else {
		alert.VerificationRef = ref
	}

	contacts, err := s.listContactsCached(ctx, profileID)
	if err != nil {
		log.WithError(err).Warn("Failed to load contacts, skipping notification fan-out")
		contacts = nil
	}

	eligible := make([]*models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.IsEmergencyContact && c.Email != "" {
			eligible = append(eligible, c)
		}
	}

	report := &models.DispatchReport{Eligible: len(eligible)}
	if len(eligible) == 0 {
		report.NoEligibleContacts = true
		log.Warn("No eligible emergency contacts to notify")
	} else {
		report.SuccessCount, report.FailureCount = s.dispatchAll(ctx, log, eligible, profile.Name, alert)
		log.WithFields(logrus.Fields{
			"success_count": report.SuccessCount,
			"failure_count": report.FailureCount,
		}).Info("Notification fan-out completed")
	}

	event := webhook.AlertEvent{
		Type:         webhook.EventAlertTriggered,
		ProfileID:    profileID,
		AlertID:      alert.ID,
		Status:       alert.Status,
		Latitude:     alert.Location.Latitude,
		Longitude:    alert.Location.Longitude,
		Timestamp:    alert.Timestamp,
		SuccessCount: report.SuccessCount,
		FailureCount: report.FailureCount,
		OccurredAt:   time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish alert event")
	}

	return alert, report, nil
}

// dispatchAll рассылает уведомления параллельно и независимо:
// отказ одного получателя не блокирует остальных.
// Каждая отправка ограничена таймаутом, чтобы один недоступный
// получатель не подвесил всю операцию.
func (s *alertService) dispatchAll(ctx context.Context, log *logrus.Entry, eligible []*models.Contact, senderName string, alert *models.Alert) (successCount, failureCount int) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, contact := range eligible {
		wg.Add(1)
		go func(contact *models.Contact) {
			defer wg.Done()
			dispatchCtx, cancel := context.WithTimeout(ctx, s.cfg.NotifyTimeout)
			defer cancel()

			err := s.gateway.Notify(dispatchCtx, contact.Email, senderName, alert.Location, alert.Timestamp)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failureCount++
				log.WithError(err).WithField("contact_id", contact.ID).Warn("Failed to notify emergency contact")
				return
			}
			successCount++
		}(contact)
	}
	wg.Wait()
	return successCount, failureCount
}

// Resolve переводит тревогу в статус resolved.
// Повторное разрешение уже разрешенной тревоги допустимо и обновляет заметки.
func (s *alertService) Resolve(ctx context.Context, profileID, alertID uuid.UUID, notes *string, responderID *uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "Resolve",
		"alert_id": alertID,
	})
	log.Info("Resolving alert")

	alert, err := s.repo.GetAlert(ctx, profileID, alertID)
	if err != nil {
		log.WithError(err).Warn("Attempted to resolve a non-existent alert")
		return fmt.Errorf("service: could not resolve alert: %w", err)
	}

	// Финальные статусы взаимоисключающие
	if alert.Status == models.AlertStatusFalseAlarm {
		log.Warn("Attempted to resolve a false-alarm alert")
		return fmt.Errorf("service: %w", ErrAlertTerminal)
	}

	alert.Status = models.AlertStatusResolved
	if notes != nil {
		alert.Notes = *notes
	}

	if responderID != nil {
		responder, err := s.repo.GetContact(ctx, profileID, *responderID)
		if err != nil {
			log.WithError(err).Warn("Responder contact not found")
			return fmt.Errorf("service: could not record responder: %w", err)
		}
		// Снимок значений контакта: последующие правки контакта
		// не должны менять историю
		alert.RespondedBy = append(alert.RespondedBy, *responder)
	}

	if err := s.repo.UpdateAlertOutcome(ctx, profileID, alert); err != nil {
		log.WithError(err).Error("Failed to update alert in repository")
		return fmt.Errorf("service: could not update alert: %w", err)
	}

	s.publishOutcome(ctx, log, webhook.EventAlertResolved, profileID, alert)
	log.Info("Alert resolved successfully")
	return nil
}

// MarkFalseAlarm переводит тревогу в статус false_alarm
func (s *alertService) MarkFalseAlarm(ctx context.Context, profileID, alertID uuid.UUID, notes *string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "MarkFalseAlarm",
		"alert_id": alertID,
	})
	log.Info("Marking alert as false alarm")

	alert, err := s.repo.GetAlert(ctx, profileID, alertID)
	if err != nil {
		log.WithError(err).Warn("Attempted to mark a non-existent alert")
		return fmt.Errorf("service: could not mark alert as false alarm: %w", err)
	}

	if alert.Status == models.AlertStatusResolved {
		log.Warn("Attempted to mark a resolved alert as false alarm")
		return fmt.Errorf("service: %w", ErrAlertTerminal)
	}

	alert.Status = models.AlertStatusFalseAlarm
	if notes != nil {
		alert.Notes = *notes
	}

	if err := s.repo.UpdateAlertOutcome(ctx, profileID, alert); err != nil {
		log.WithError(err).Error("Failed to update alert in repository")
		return fmt.Errorf("service: could not update alert: %w", err)
	}

	s.publishOutcome(ctx, log, webhook.EventAlertFalseAlarm, profileID, alert)
	log.Info("Alert marked as false alarm")
	return nil
}

// ListAlerts возвращает историю тревог профиля, новые первыми
func (s *alertService) ListAlerts(ctx context.Context, profileID uuid.UUID) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "ListAlerts",
		"profile_id": profileID,
	})

	alerts, err := s.repo.ListAlerts(ctx, profileID)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Info("Alerts listed successfully")
	return alerts, nil
}

// ListAlertsByStatus возвращает тревоги с заданным статусом, сохраняя порядок
func (s *alertService) ListAlertsByStatus(ctx context.Context, profileID uuid.UUID, status models.AlertStatus) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "ListAlertsByStatus",
		"profile_id": profileID,
		"status":     status,
	})

	alerts, err := s.repo.ListAlertsByStatus(ctx, profileID, status)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts by status from repository")
		return nil, fmt.Errorf("service: could not list alerts by status: %w", err)
	}

	log.WithField("count", len(alerts)).Info("Alerts listed successfully")
	return alerts, nil
}

func (s *alertService) publishOutcome(ctx context.Context, log *logrus.Entry, eventType webhook.EventType, profileID uuid.UUID, alert *models.Alert) {
	event := webhook.AlertEvent{
		Type:       eventType,
		ProfileID:  profileID,
		AlertID:    alert.ID,
		Status:     alert.Status,
		Latitude:   alert.Location.Latitude,
		Longitude:  alert.Location.Longitude,
		Timestamp:  alert.Timestamp,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish alert event")
	}
}

// listContactsCached читает контакты через кеш, при промахе идет в бд
func (s *alertService) listContactsCached(ctx context.Context, profileID uuid.UUID) ([]*models.Contact, error) {
	cached, err := s.repo.GetContactsFromCache(ctx, profileID)
	if err == nil && cached != nil {
		return cached, nil
	}
	if err != nil {
		s.logger.WithError(err).Debug("Contacts cache read failed")
	}

	contacts, err := s.repo.ListContacts(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetContactsCache(ctx, profileID, contacts); err != nil {
		s.logger.WithError(err).Debug("Contacts cache write failed")
	}
	return contacts, nil
}
