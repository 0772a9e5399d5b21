package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	alertService   service.AlertService
	contactService service.ContactService
	profileService service.ProfileService
	countdown      *service.CountdownManager
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(
	alertService service.AlertService,
	contactService service.ContactService,
	profileService service.ProfileService,
	countdown *service.CountdownManager,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		alertService:   alertService,
		contactService: contactService,
		profileService: profileService,
		countdown:      countdown,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// profileID извлекает id профиля из заголовка X-User-ID.
// Сессионное хранилище вне границ сервиса, заголовок его замещает.
func (h *Handler) profileID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid profile ID"})
		return uuid.Nil, false
	}
	return id, true
}

// serviceError переводит ошибки бизнес-логики в HTTP-статусы
func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrLocationUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "location unavailable"})
	case errors.Is(err, service.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
	case errors.Is(err, service.ErrContactNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
	case errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	case errors.Is(err, service.ErrAlertTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": "alert already in a terminal status"})
	case errors.Is(err, service.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "contact name is required"})
	case errors.Is(err, service.ErrPhoneRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "contact phone number is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Register a new profile
// @Description Register a new user profile. Requires API key.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body RegisterProfileRequest true "Profile registration request"
// @Success 201 {object} ProfileResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profiles [post]
func (h *Handler) registerProfile(c *gin.Context) {
	var input RegisterProfileRequest
	log := h.logger.WithField("method", "registerProfile")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToProfileModel(input)
	if err := h.profileService.Register(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to register profile in service")
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToProfileResponse(model))
}

// @Summary Trigger an SOS alert
// @Description Capture current location, persist an alert and notify emergency contacts. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Success 201 {object} TriggerSOSResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Location unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/trigger [post]
func (h *Handler) triggerSOS(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "triggerSOS").WithField("profile_id", profileID)

	alert, report, err := h.alertService.TriggerSOS(c.Request.Context(), profileID)
	if err != nil {
		log.WithError(err).Error("Failed to trigger SOS in service")
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TriggerSOSResponse{
		Alert:    *ModelToAlertResponse(alert),
		Dispatch: ModelToDispatchResponse(report),
	})
}

// @Summary Start the SOS countdown
// @Description Schedule a deferred SOS trigger. Cancellable until the countdown elapses. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Param countdown body StartCountdownRequest false "Countdown request"
// @Success 202 {object} CountdownResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sos/countdown [post]
func (h *Handler) startCountdown(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "startCountdown").WithField("profile_id", profileID)

	var input StartCountdownRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	delay := h.cfg.SOSCountdown
	if input.Seconds > 0 {
		delay = time.Duration(input.Seconds) * time.Second
	}

	h.countdown.Start(profileID, delay, func() {
		// Запрос давно завершен, поэтому отдельный контекст с лимитом
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if _, _, err := h.alertService.TriggerSOS(ctx, profileID); err != nil {
			log.WithError(err).Error("Deferred SOS trigger failed")
		}
	})

	c.JSON(http.StatusAccepted, CountdownResponse{
		Pending: true,
		Seconds: int(delay.Seconds()),
	})
}

// @Summary Cancel the SOS countdown
// @Description Cancel a pending SOS countdown. Has no effect once the countdown has fired. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Success 200 {object} CountdownResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} CountdownResponse "No pending countdown"
// @Router /sos/countdown [delete]
func (h *Handler) cancelCountdown(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}

	if !h.countdown.Cancel(profileID) {
		c.JSON(http.StatusNotFound, CountdownResponse{Pending: false, Message: "no pending countdown"})
		return
	}
	c.JSON(http.StatusOK, CountdownResponse{Pending: false, Message: "countdown cancelled"})
}

// @Summary List alerts
// @Description Get the profile's alert history, newest first. Optionally filter by status. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Param status query string false "Alert status filter" Enums(active, resolved, false_alarm)
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listAlerts").WithField("profile_id", profileID)

	var (
		alerts []*models.Alert
		err    error
	)
	if statusQuery := c.Query("status"); statusQuery != "" {
		status := models.AlertStatus(statusQuery)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert status"})
			return
		}
		alerts, err = h.alertService.ListAlertsByStatus(c.Request.Context(), profileID, status)
	} else {
		alerts, err = h.alertService.ListAlerts(c.Request.Context(), profileID)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Resolve an alert
// @Description Mark an alert as resolved, optionally updating notes and recording a responder. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Param id path string true "Alert ID"
// @Param resolve body ResolveAlertRequest false "Resolve request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already in a terminal status"
// @Router /alerts/{id}/resolve [post]
func (h *Handler) resolveAlert(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "resolveAlert").WithField("alert_id", alertID)

	var input ResolveAlertRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	if err := h.alertService.Resolve(c.Request.Context(), profileID, alertID, input.Notes, input.RespondedBy); err != nil {
		log.WithError(err).Warn("Failed to resolve alert in service")
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Mark an alert as a false alarm
// @Description Mark an alert as a false alarm, optionally updating notes. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Param id path string true "Alert ID"
// @Param falseAlarm body FalseAlarmRequest false "False alarm request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already in a terminal status"
// @Router /alerts/{id}/false-alarm [post]
func (h *Handler) falseAlarm(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "falseAlarm").WithField("alert_id", alertID)

	var input FalseAlarmRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	if err := h.alertService.MarkFalseAlarm(c.Request.Context(), profileID, alertID, input.Notes); err != nil {
		log.WithError(err).Warn("Failed to mark alert as false alarm in service")
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Add a contact
// @Description Add a trusted contact to the profile. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Param contact body CreateContactRequest true "Contact creation request"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts [post]
func (h *Handler) addContact(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	var input CreateContactRequest
	log := h.logger.WithField("method", "addContact")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToContactModel(input)
	if err := h.contactService.AddContact(c.Request.Context(), profileID, model); err != nil {
		log.WithError(err).Error("Failed to add contact in service")
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToContactResponse(model))
}

// @Summary List contacts
// @Description Get the profile's contacts in insertion order. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Success 200 {array} ContactResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts [get]
func (h *Handler) listContacts(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listContacts").WithField("profile_id", profileID)

	contacts, err := h.contactService.ListContacts(c.Request.Context(), profileID)
	if err != nil {
		log.WithError(err).Error("Failed to list contacts from service")
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToContactResponses(contacts))
}

// @Summary Update a contact
// @Description Partially update a contact; omitted fields are left unchanged. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Param id path string true "Contact ID"
// @Param contact body UpdateContactRequest true "Contact update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid contact ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Contact not found"
// @Router /contacts/{id} [put]
func (h *Handler) updateContact(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact ID"})
		return
	}
	log := h.logger.WithField("method", "updateContact").WithField("contact_id", contactID)

	var input UpdateContactRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contactService.UpdateContact(c.Request.Context(), profileID, contactID, DTOToContactPatch(input)); err != nil {
		log.WithError(err).Warn("Failed to update contact in service")
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Remove a contact
// @Description Remove a contact from the profile. Removing an unknown ID is not an error. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Param id path string true "Contact ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid contact ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts/{id} [delete]
func (h *Handler) deleteContact(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact ID"})
		return
	}
	log := h.logger.WithField("method", "deleteContact").WithField("contact_id", contactID)

	if err := h.contactService.RemoveContact(c.Request.Context(), profileID, contactID); err != nil {
		log.WithError(err).Error("Failed to remove contact in service")
		h.serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Toggle the emergency flag of a contact
// @Description Explicitly set whether a contact participates in emergency fan-out. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Profile ID"
// @Param id path string true "Contact ID"
// @Param flag body SetEmergencyFlagRequest true "Emergency flag request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid contact ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Contact not found"
// @Router /contacts/{id}/emergency [patch]
func (h *Handler) setEmergencyFlag(c *gin.Context) {
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact ID"})
		return
	}
	log := h.logger.WithField("method", "setEmergencyFlag").WithField("contact_id", contactID)

	var input SetEmergencyFlagRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contactService.SetEmergencyFlag(c.Request.Context(), profileID, contactID, *input.IsEmergencyContact); err != nil {
		log.WithError(err).Warn("Failed to toggle emergency flag in service")
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
