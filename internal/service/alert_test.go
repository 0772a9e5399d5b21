package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service/mocks"
	webhook_mocks "github.com/shenikar/sos_alert_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type alertServiceMocks struct {
	repo      *mocks.MockProfileRepository
	location  *mocks.MockLocationProvider
	gateway   *mocks.MockNotificationGateway
	anchor    *mocks.MockVerificationAnchor
	publisher *webhook_mocks.MockWebhookPublisher
}

// newTestAlertService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAlertService(t *testing.T) (*alertService, *alertServiceMocks) {
	ctrl := gomock.NewController(t)
	m := &alertServiceMocks{
		repo:      mocks.NewMockProfileRepository(ctrl),
		location:  mocks.NewMockLocationProvider(ctrl),
		gateway:   mocks.NewMockNotificationGateway(ctrl),
		anchor:    mocks.NewMockVerificationAnchor(ctrl),
		publisher: webhook_mocks.NewMockWebhookPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		NotifyTimeout: 2 * time.Second,
	}

	service := NewAlertService(m.repo, m.location, m.gateway, m.anchor, m.publisher, logger, cfg)
	return service.(*alertService), m
}

func TestTriggerSOS_Success_PartialFailure(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()
	profile := &models.Profile{ID: profileID, Name: "Анна"}
	location := models.GeoLocation{Latitude: 55.75, Longitude: 37.61}
	contacts := []*models.Contact{
		{ID: uuid.New(), Name: "Мама", Email: "mom@example.com", IsEmergencyContact: true},
		{ID: uuid.New(), Name: "Брат", Email: "bro@example.com", IsEmergencyContact: true},
		{ID: uuid.New(), Name: "Коллега", Email: "work@example.com", IsEmergencyContact: false},
	}

	// Ожидания
	m.repo.EXPECT().GetProfile(ctx, profileID).Return(profile, nil).Times(1)
	m.location.EXPECT().CurrentPosition(ctx).Return(location, nil).Times(1)
	m.repo.EXPECT().
		CreateAlert(ctx, profileID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, alert *models.Alert) error {
			alert.ID = alertID
			return nil
		}).
		Times(1)
	m.anchor.EXPECT().Record(ctx, gomock.Any()).Return("0xabc123", nil).Times(1)
	m.repo.EXPECT().SetVerificationRef(ctx, profileID, alertID, "0xabc123").Return(nil).Times(1)
	m.repo.EXPECT().GetContactsFromCache(ctx, profileID).Return(nil, nil).Times(1)
	m.repo.EXPECT().ListContacts(ctx, profileID).Return(contacts, nil).Times(1)
	m.repo.EXPECT().SetContactsCache(ctx, profileID, contacts).Return(nil).Times(1)

	// Один получатель доставлен, второй отказал — рассылка идет независимо
	m.gateway.EXPECT().
		Notify(gomock.Any(), "mom@example.com", "Анна", location, gomock.Any()).
		Return(nil).
		Times(1)
	m.gateway.EXPECT().
		Notify(gomock.Any(), "bro@example.com", "Анна", location, gomock.Any()).
		Return(fmt.Errorf("smtp: connection refused")).
		Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, report, err := service.TriggerSOS(ctx, profileID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, alert)
	require.NotNil(t, report)
	assert.Equal(t, alertID, alert.ID)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.Equal(t, location, alert.Location)
	assert.Equal(t, "0xabc123", alert.VerificationRef)
	assert.Equal(t, 2, report.Eligible)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
	assert.Equal(t, report.Eligible, report.SuccessCount+report.FailureCount)
	assert.False(t, report.NoEligibleContacts)
}

func TestTriggerSOS_NotAuthenticated(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()

	// Ожидания
	m.repo.EXPECT().
		GetProfile(ctx, profileID).
		Return(nil, fmt.Errorf("profile %s: %w", profileID, ErrProfileNotFound)).
		Times(1)

	// Действие
	alert, report, err := service.TriggerSOS(ctx, profileID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Nil(t, alert)
	assert.Nil(t, report)
}

func TestTriggerSOS_LocationUnavailable(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	profile := &models.Profile{ID: profileID, Name: "Анна"}

	// Ожидания
	// Отказ геолокации фатален: тревога не создается и рассылки нет
	m.repo.EXPECT().GetProfile(ctx, profileID).Return(profile, nil).Times(1)
	m.location.EXPECT().
		CurrentPosition(ctx).
		Return(models.GeoLocation{}, fmt.Errorf("gps: timeout")).
		Times(1)

	// Действие
	alert, report, err := service.TriggerSOS(ctx, profileID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocationUnavailable)
	assert.Nil(t, alert)
	assert.Nil(t, report)
}

func TestTriggerSOS_PersistFailure(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	profile := &models.Profile{ID: profileID, Name: "Анна"}
	location := models.GeoLocation{Latitude: 55.75, Longitude: 37.61}
	dbError := fmt.Errorf("pgx: connection closed")

	// Ожидания
	m.repo.EXPECT().GetProfile(ctx, profileID).Return(profile, nil).Times(1)
	m.location.EXPECT().CurrentPosition(ctx).Return(location, nil).Times(1)
	m.repo.EXPECT().CreateAlert(ctx, profileID, gomock.Any()).Return(dbError).Times(1)

	// Действие
	alert, report, err := service.TriggerSOS(ctx, profileID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
	assert.Nil(t, alert)
	assert.Nil(t, report)
}

func TestTriggerSOS_NoEligibleContacts(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()
	profile := &models.Profile{ID: profileID, Name: "Анна"}
	location := models.GeoLocation{Latitude: 55.75, Longitude: 37.61}
	// Экстренный без email и обычный с email — ни один не подходит
	contacts := []*models.Contact{
		{ID: uuid.New(), Name: "Мама", Email: "", IsEmergencyContact: true},
		{ID: uuid.New(), Name: "Коллега", Email: "work@example.com", IsEmergencyContact: false},
	}

	// Ожидания
	m.repo.EXPECT().GetProfile(ctx, profileID).Return(profile, nil).Times(1)
	m.location.EXPECT().CurrentPosition(ctx).Return(location, nil).Times(1)
	m.repo.EXPECT().
		CreateAlert(ctx, profileID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, alert *models.Alert) error {
			alert.ID = alertID
			return nil
		}).
		Times(1)
	m.anchor.EXPECT().Record(ctx, gomock.Any()).Return("0xabc123", nil).Times(1)
	m.repo.EXPECT().SetVerificationRef(ctx, profileID, alertID, "0xabc123").Return(nil).Times(1)
	m.repo.EXPECT().GetContactsFromCache(ctx, profileID).Return(contacts, nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, report, err := service.TriggerSOS(ctx, profileID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.True(t, report.NoEligibleContacts)
	assert.Equal(t, 0, report.Eligible)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 0, report.FailureCount)
}

func TestTriggerSOS_AnchorFailure_DoesNotAbort(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()
	profile := &models.Profile{ID: profileID, Name: "Анна"}
	location := models.GeoLocation{Latitude: 55.75, Longitude: 37.61}

	// Ожидания
	m.repo.EXPECT().GetProfile(ctx, profileID).Return(profile, nil).Times(1)
	m.location.EXPECT().CurrentPosition(ctx).Return(location, nil).Times(1)
	m.repo.EXPECT().
		CreateAlert(ctx, profileID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, alert *models.Alert) error {
			alert.ID = alertID
			return nil
		}).
		Times(1)
	m.anchor.EXPECT().Record(ctx, gomock.Any()).Return("", fmt.Errorf("ledger: unreachable")).Times(1)
	m.repo.EXPECT().GetContactsFromCache(ctx, profileID).Return([]*models.Contact{}, nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, report, err := service.TriggerSOS(ctx, profileID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Empty(t, alert.VerificationRef)
	assert.True(t, report.NoEligibleContacts)
}

func TestTriggerSOS_ContactsLoadFailure_SkipsFanOut(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()
	profile := &models.Profile{ID: profileID, Name: "Анна"}
	location := models.GeoLocation{Latitude: 55.75, Longitude: 37.61}

	// Ожидания
	// Тревога уже записана, отказ справочника не откатывает ее
	m.repo.EXPECT().GetProfile(ctx, profileID).Return(profile, nil).Times(1)
	m.location.EXPECT().CurrentPosition(ctx).Return(location, nil).Times(1)
	m.repo.EXPECT().
		CreateAlert(ctx, profileID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, alert *models.Alert) error {
			alert.ID = alertID
			return nil
		}).
		Times(1)
	m.anchor.EXPECT().Record(ctx, gomock.Any()).Return("0xabc123", nil).Times(1)
	m.repo.EXPECT().SetVerificationRef(ctx, profileID, alertID, "0xabc123").Return(nil).Times(1)
	m.repo.EXPECT().GetContactsFromCache(ctx, profileID).Return(nil, fmt.Errorf("redis: closed")).Times(1)
	m.repo.EXPECT().ListContacts(ctx, profileID).Return(nil, fmt.Errorf("pgx: connection closed")).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, report, err := service.TriggerSOS(ctx, profileID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.True(t, report.NoEligibleContacts)
}

func TestResolve_Success_WithResponderSnapshot(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()
	responderID := uuid.New()
	notes := "Соседи проверили, все в порядке"
	responder := &models.Contact{ID: responderID, Name: "Мама", Email: "mom@example.com", IsEmergencyContact: true}
	alert := &models.Alert{ID: alertID, Status: models.AlertStatusActive}

	// Ожидания
	m.repo.EXPECT().GetAlert(ctx, profileID, alertID).Return(alert, nil).Times(1)
	m.repo.EXPECT().GetContact(ctx, profileID, responderID).Return(responder, nil).Times(1)
	m.repo.EXPECT().
		UpdateAlertOutcome(ctx, profileID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, updated *models.Alert) error {
			assert.Equal(t, models.AlertStatusResolved, updated.Status)
			assert.Equal(t, notes, updated.Notes)
			require.Len(t, updated.RespondedBy, 1)
			assert.Equal(t, *responder, updated.RespondedBy[0])
			return nil
		}).
		Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := service.Resolve(ctx, profileID, alertID, &notes, &responderID)

	// Проверки
	require.NoError(t, err)
}

func TestResolve_NilNotes_PreservesExisting(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()
	alert := &models.Alert{ID: alertID, Status: models.AlertStatusActive, Notes: "Первичная заметка"}

	// Ожидания
	m.repo.EXPECT().GetAlert(ctx, profileID, alertID).Return(alert, nil).Times(1)
	m.repo.EXPECT().
		UpdateAlertOutcome(ctx, profileID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, updated *models.Alert) error {
			assert.Equal(t, "Первичная заметка", updated.Notes)
			return nil
		}).
		Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := service.Resolve(ctx, profileID, alertID, nil, nil)

	// Проверки
	require.NoError(t, err)
}

func TestResolve_NotFound(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()

	// Ожидания
	m.repo.EXPECT().
		GetAlert(ctx, profileID, alertID).
		Return(nil, fmt.Errorf("alert %s: %w", alertID, ErrAlertNotFound)).
		Times(1)

	// Действие
	err := service.Resolve(ctx, profileID, alertID, nil, nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestResolve_FalseAlarmIsTerminal(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()
	alert := &models.Alert{ID: alertID, Status: models.AlertStatusFalseAlarm}

	// Ожидания
	m.repo.EXPECT().GetAlert(ctx, profileID, alertID).Return(alert, nil).Times(1)

	// Действие
	err := service.Resolve(ctx, profileID, alertID, nil, nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlertTerminal)
}

func TestResolve_AlreadyResolved_UpdatesNotes(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()
	notes := "Уточнение после звонка"
	alert := &models.Alert{ID: alertID, Status: models.AlertStatusResolved, Notes: "Старая заметка"}

	// Ожидания
	m.repo.EXPECT().GetAlert(ctx, profileID, alertID).Return(alert, nil).Times(1)
	m.repo.EXPECT().
		UpdateAlertOutcome(ctx, profileID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, updated *models.Alert) error {
			assert.Equal(t, models.AlertStatusResolved, updated.Status)
			assert.Equal(t, notes, updated.Notes)
			return nil
		}).
		Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := service.Resolve(ctx, profileID, alertID, &notes, nil)

	// Проверки
	require.NoError(t, err)
}

func TestMarkFalseAlarm_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()
	notes := "Случайное нажатие"
	alert := &models.Alert{ID: alertID, Status: models.AlertStatusActive}

	// Ожидания
	m.repo.EXPECT().GetAlert(ctx, profileID, alertID).Return(alert, nil).Times(1)
	m.repo.EXPECT().
		UpdateAlertOutcome(ctx, profileID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, updated *models.Alert) error {
			assert.Equal(t, models.AlertStatusFalseAlarm, updated.Status)
			assert.Equal(t, notes, updated.Notes)
			return nil
		}).
		Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := service.MarkFalseAlarm(ctx, profileID, alertID, &notes)

	// Проверки
	require.NoError(t, err)
}

func TestMarkFalseAlarm_ResolvedIsTerminal(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	alertID := uuid.New()
	alert := &models.Alert{ID: alertID, Status: models.AlertStatusResolved}

	// Ожидания
	m.repo.EXPECT().GetAlert(ctx, profileID, alertID).Return(alert, nil).Times(1)

	// Действие
	err := service.MarkFalseAlarm(ctx, profileID, alertID, nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlertTerminal)
}

func TestListAlerts_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	expected := []*models.Alert{
		{ID: uuid.New(), Status: models.AlertStatusActive},
		{ID: uuid.New(), Status: models.AlertStatusResolved},
	}

	// Ожидания
	m.repo.EXPECT().ListAlerts(ctx, profileID).Return(expected, nil).Times(1)

	// Действие
	alerts, err := service.ListAlerts(ctx, profileID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestListAlertsByStatus_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	profileID := uuid.New()
	expected := []*models.Alert{
		{ID: uuid.New(), Status: models.AlertStatusFalseAlarm},
	}

	// Ожидания
	m.repo.EXPECT().
		ListAlertsByStatus(ctx, profileID, models.AlertStatusFalseAlarm).
		Return(expected, nil).
		Times(1)

	// Действие
	alerts, err := service.ListAlertsByStatus(ctx, profileID, models.AlertStatusFalseAlarm)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}
