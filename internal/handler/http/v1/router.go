package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Регистрация профиля
	api.POST("/profiles", h.registerProfile)

	// Маршруты SOS: срабатывание и отложенный отсчет
	sos := api.Group("/sos")
	{
		sos.POST("/trigger", h.triggerSOS)
		sos.POST("/countdown", h.startCountdown)
		sos.DELETE("/countdown", h.cancelCountdown)
	}

	// Маршруты истории тревог
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("/:id/resolve", h.resolveAlert)
		alerts.POST("/:id/false-alarm", h.falseAlarm)
	}

	// Маршруты для управления контактами (CRUD)
	contacts := api.Group("/contacts")
	{
		contacts.POST("", h.addContact)
		contacts.GET("", h.listContacts)
		contacts.PUT("/:id", h.updateContact)
		contacts.DELETE("/:id", h.deleteContact)
		contacts.PATCH("/:id/emergency", h.setEmergencyFlag)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
