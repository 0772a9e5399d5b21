package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service"
	"github.com/shenikar/sos_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	alerts   *mocks.MockAlertService
	contacts *mocks.MockContactService
	profiles *mocks.MockProfileService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		alerts:   mocks.NewMockAlertService(ctrl),
		contacts: mocks.NewMockContactService(ctrl),
		profiles: mocks.NewMockProfileService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		SOSCountdown: 3 * time.Second,
	}

	countdown := service.NewCountdownManager(logger)
	handler := NewHandler(m.alerts, m.contacts, m.profiles, countdown, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader(profileID uuid.UUID) map[string]string {
	return map[string]string{"X-User-ID": profileID.String()}
}

func TestRegisterProfile_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RegisterProfileRequest{
		Name:        "Анна Иванова",
		PhoneNumber: "+79001234567",
		Email:       "anna@example.com",
	}
	body, _ := json.Marshal(reqBody)

	m.profiles.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile *models.Profile) error {
			profile.ID = uuid.New()
			return nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/profiles", bytes.NewReader(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestRegisterProfile_ValidationError(t *testing.T) {
	_, router := newTestHandler(t)
	body := []byte(`{"name": "А", "phone_number": "+79001234567", "email": "not-an-email"}`)

	w := makeRequest(router, http.MethodPost, "/api/v1/profiles", bytes.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTriggerSOS_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	alert := &models.Alert{
		ID:        uuid.New(),
		Timestamp: time.Now().UnixMilli(),
		Location:  models.GeoLocation{Latitude: 55.75, Longitude: 37.61},
		Status:    models.AlertStatusActive,
	}
	report := &models.DispatchReport{Eligible: 2, SuccessCount: 1, FailureCount: 1}

	m.alerts.EXPECT().
		TriggerSOS(gomock.Any(), profileID).
		Return(alert, report, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/trigger", nil, authHeader(profileID))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp TriggerSOSResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, alert.ID, resp.Alert.ID)
	assert.Equal(t, "active", resp.Alert.Status)
	assert.Equal(t, 2, resp.Dispatch.Eligible)
	assert.Equal(t, 1, resp.Dispatch.SuccessCount)
	assert.Equal(t, 1, resp.Dispatch.FailureCount)
}

func TestTriggerSOS_MissingUserHeader(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/trigger", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTriggerSOS_LocationUnavailable(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()

	m.alerts.EXPECT().
		TriggerSOS(gomock.Any(), profileID).
		Return(nil, nil, fmt.Errorf("service: %w: gps timeout", service.ErrLocationUnavailable)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/trigger", nil, authHeader(profileID))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestTriggerSOS_NotAuthenticated(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()

	m.alerts.EXPECT().
		TriggerSOS(gomock.Any(), profileID).
		Return(nil, nil, fmt.Errorf("service: %w", service.ErrNotAuthenticated)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/trigger", nil, authHeader(profileID))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStartCountdown_AndCancel(t *testing.T) {
	_, router := newTestHandler(t)
	profileID := uuid.New()
	body, _ := json.Marshal(StartCountdownRequest{Seconds: 60})

	// Запуск отсчета
	w := makeRequest(router, http.MethodPost, "/api/v1/sos/countdown", bytes.NewReader(body), authHeader(profileID))
	assert.Equal(t, http.StatusAccepted, w.Code)
	var resp CountdownResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Pending)
	assert.Equal(t, 60, resp.Seconds)

	// Отмена до срабатывания: TriggerSOS не должен вызваться
	w = makeRequest(router, http.MethodDelete, "/api/v1/sos/countdown", nil, authHeader(profileID))
	assert.Equal(t, http.StatusOK, w.Code)

	// Повторная отмена — отсчета уже нет
	w = makeRequest(router, http.MethodDelete, "/api/v1/sos/countdown", nil, authHeader(profileID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartCountdown_InvalidSeconds(t *testing.T) {
	_, router := newTestHandler(t)
	profileID := uuid.New()
	body := []byte(`{"seconds": 10000}`)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/countdown", bytes.NewReader(body), authHeader(profileID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAlerts_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	alerts := []*models.Alert{
		{ID: uuid.New(), Status: models.AlertStatusActive},
		{ID: uuid.New(), Status: models.AlertStatusResolved},
	}

	m.alerts.EXPECT().
		ListAlerts(gomock.Any(), profileID).
		Return(alerts, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil, authHeader(profileID))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestListAlerts_StatusFilter(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()

	m.alerts.EXPECT().
		ListAlertsByStatus(gomock.Any(), profileID, models.AlertStatusResolved).
		Return([]*models.Alert{}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts?status=resolved", nil, authHeader(profileID))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAlerts_InvalidStatus(t *testing.T) {
	_, router := newTestHandler(t)
	profileID := uuid.New()

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts?status=unknown", nil, authHeader(profileID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveAlert_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	alertID := uuid.New()
	responderID := uuid.New()
	notes := "Все в порядке"
	body, _ := json.Marshal(ResolveAlertRequest{Notes: &notes, RespondedBy: &responderID})

	m.alerts.EXPECT().
		Resolve(gomock.Any(), profileID, alertID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, gotNotes *string, gotResponder *uuid.UUID) error {
			require.NotNil(t, gotNotes)
			assert.Equal(t, notes, *gotNotes)
			require.NotNil(t, gotResponder)
			assert.Equal(t, responderID, *gotResponder)
			return nil
		}).
		Times(1)

	url := fmt.Sprintf("/api/v1/alerts/%s/resolve", alertID)
	w := makeRequest(router, http.MethodPost, url, bytes.NewReader(body), authHeader(profileID))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveAlert_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	alertID := uuid.New()

	m.alerts.EXPECT().
		Resolve(gomock.Any(), profileID, alertID, gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: %w", service.ErrAlertNotFound)).
		Times(1)

	url := fmt.Sprintf("/api/v1/alerts/%s/resolve", alertID)
	w := makeRequest(router, http.MethodPost, url, nil, authHeader(profileID))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveAlert_TerminalConflict(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	alertID := uuid.New()

	m.alerts.EXPECT().
		Resolve(gomock.Any(), profileID, alertID, gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: %w", service.ErrAlertTerminal)).
		Times(1)

	url := fmt.Sprintf("/api/v1/alerts/%s/resolve", alertID)
	w := makeRequest(router, http.MethodPost, url, nil, authHeader(profileID))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestResolveAlert_InvalidID(t *testing.T) {
	_, router := newTestHandler(t)
	profileID := uuid.New()

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/not-a-uuid/resolve", nil, authHeader(profileID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFalseAlarm_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	alertID := uuid.New()
	notes := "Случайное нажатие"
	body, _ := json.Marshal(FalseAlarmRequest{Notes: &notes})

	m.alerts.EXPECT().
		MarkFalseAlarm(gomock.Any(), profileID, alertID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, gotNotes *string) error {
			require.NotNil(t, gotNotes)
			assert.Equal(t, notes, *gotNotes)
			return nil
		}).
		Times(1)

	url := fmt.Sprintf("/api/v1/alerts/%s/false-alarm", alertID)
	w := makeRequest(router, http.MethodPost, url, bytes.NewReader(body), authHeader(profileID))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddContact_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	reqBody := CreateContactRequest{
		Name:               "Мама",
		PhoneNumber:        "+79001234567",
		Email:              "mom@example.com",
		IsEmergencyContact: true,
	}
	body, _ := json.Marshal(reqBody)

	m.contacts.EXPECT().
		AddContact(gomock.Any(), profileID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, contact *models.Contact) error {
			contact.ID = uuid.New()
			return nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/contacts", bytes.NewReader(body), authHeader(profileID))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.True(t, resp.IsEmergencyContact)
}

func TestAddContact_ValidationError(t *testing.T) {
	_, router := newTestHandler(t)
	profileID := uuid.New()
	body := []byte(`{"name": "М", "phone_number": ""}`)

	w := makeRequest(router, http.MethodPost, "/api/v1/contacts", bytes.NewReader(body), authHeader(profileID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListContacts_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	contacts := []*models.Contact{
		{ID: uuid.New(), Name: "Мама", IsEmergencyContact: true},
	}

	m.contacts.EXPECT().
		ListContacts(gomock.Any(), profileID).
		Return(contacts, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/contacts", nil, authHeader(profileID))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Мама", resp[0].Name)
}

func TestUpdateContact_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	contactID := uuid.New()
	newEmail := "mom@new.example.com"
	body, _ := json.Marshal(UpdateContactRequest{Email: &newEmail})

	m.contacts.EXPECT().
		UpdateContact(gomock.Any(), profileID, contactID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, patch models.ContactPatch) error {
			require.NotNil(t, patch.Email)
			assert.Equal(t, newEmail, *patch.Email)
			assert.Nil(t, patch.Name)
			return nil
		}).
		Times(1)

	url := fmt.Sprintf("/api/v1/contacts/%s", contactID)
	w := makeRequest(router, http.MethodPut, url, bytes.NewReader(body), authHeader(profileID))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateContact_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	contactID := uuid.New()
	name := "Мама"
	body, _ := json.Marshal(UpdateContactRequest{Name: &name})

	m.contacts.EXPECT().
		UpdateContact(gomock.Any(), profileID, contactID, gomock.Any()).
		Return(fmt.Errorf("service: %w", service.ErrContactNotFound)).
		Times(1)

	url := fmt.Sprintf("/api/v1/contacts/%s", contactID)
	w := makeRequest(router, http.MethodPut, url, bytes.NewReader(body), authHeader(profileID))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteContact_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	contactID := uuid.New()

	m.contacts.EXPECT().
		RemoveContact(gomock.Any(), profileID, contactID).
		Return(nil).
		Times(1)

	url := fmt.Sprintf("/api/v1/contacts/%s", contactID)
	w := makeRequest(router, http.MethodDelete, url, nil, authHeader(profileID))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSetEmergencyFlag_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profileID := uuid.New()
	contactID := uuid.New()
	body := []byte(`{"is_emergency_contact": true}`)

	m.contacts.EXPECT().
		SetEmergencyFlag(gomock.Any(), profileID, contactID, true).
		Return(nil).
		Times(1)

	url := fmt.Sprintf("/api/v1/contacts/%s/emergency", contactID)
	w := makeRequest(router, http.MethodPatch, url, bytes.NewReader(body), authHeader(profileID))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetEmergencyFlag_MissingField(t *testing.T) {
	_, router := newTestHandler(t)
	profileID := uuid.New()
	body := []byte(`{}`)

	url := fmt.Sprintf("/api/v1/contacts/%s/emergency", uuid.New())
	w := makeRequest(router, http.MethodPatch, url, bytes.NewReader(body), authHeader(profileID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
